package translation

import (
	"context"
	"fmt"

	"morse-translator/internal/cache"
	"morse-translator/internal/morse"
	"morse-translator/internal/textutil"
	"morse-translator/internal/worker"

	"github.com/rs/zerolog/log"
)

// Service runs translations through the result cache and fans batches out
// over a worker pool. It is safe for concurrent use.
type Service struct {
	cache   *cache.ResultCache
	workers int
}

// NewService creates a translation service.
func NewService(resultCache *cache.ResultCache, workers int) *Service {
	if resultCache == nil {
		resultCache = cache.NewResultCache(0)
	}
	return &Service{cache: resultCache, workers: workers}
}

// Translate converts a single input, consulting the cache first.
func (s *Service) Translate(ctx context.Context, input string) morse.Result {
	if res, ok := s.cache.Get(input); ok {
		log.Ctx(ctx).Debug().Str("input", textutil.Truncate(input, 30)).Msg("Cache hit")
		return res
	}

	res := morse.TranslateWithDiagnostics(input)
	s.cache.Set(input, res)

	log.Ctx(ctx).Debug().
		Str("input", textutil.Truncate(input, 30)).
		Stringer("source", res.Source).
		Strs("unknown", res.Unknown).
		Msg("Translated")

	return res
}

// TranslateLines translates each line independently, preserving order.
func (s *Service) TranslateLines(ctx context.Context, lines []string) ([]morse.Result, error) {
	pool := worker.NewPool[string, morse.Result](s.workers,
		func(ctx context.Context, line string) (morse.Result, error) {
			return s.Translate(ctx, line), nil
		},
	)

	tasks := pool.Execute(ctx, lines)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("translate lines: %w", err)
	}

	results := make([]morse.Result, len(tasks))
	for i, task := range tasks {
		if task.Err != nil {
			return nil, fmt.Errorf("translate line %d: %w", i+1, task.Err)
		}
		results[i] = task.Result
	}
	return results, nil
}

// Classify reports the detected language of input.
func (s *Service) Classify(input string) morse.Language {
	return morse.Classify(input)
}

// CacheStats exposes the underlying cache counters.
func (s *Service) CacheStats() cache.Stats {
	return s.cache.Stats()
}
