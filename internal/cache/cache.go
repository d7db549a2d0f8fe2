package cache

import (
	"sync"
	"sync/atomic"

	"morse-translator/internal/morse"
	"morse-translator/internal/textutil"

	"github.com/rs/zerolog/log"
)

// ResultCache is a bounded in-memory cache of translation results keyed by
// the hash of the raw input.
type ResultCache struct {
	mu         sync.RWMutex
	memory     map[string]morse.Result // hash → result
	maxEntries int
	hits       atomic.Int64
	misses     atomic.Int64
}

// Stats is a snapshot of cache usage.
type Stats struct {
	Entries int   `json:"entries" yaml:"entries"`
	Hits    int64 `json:"hits" yaml:"hits"`
	Misses  int64 `json:"misses" yaml:"misses"`
}

// NewResultCache creates a cache holding at most maxEntries results.
// A non-positive maxEntries disables caching.
func NewResultCache(maxEntries int) *ResultCache {
	return &ResultCache{
		memory:     make(map[string]morse.Result),
		maxEntries: maxEntries,
	}
}

// Get retrieves a cached result. Returns the zero Result and false if not found.
func (c *ResultCache) Get(input string) (morse.Result, bool) {
	hash := textutil.Hash(input)

	c.mu.RLock()
	res, ok := c.memory[hash]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return morse.Result{}, false
	}
	c.hits.Add(1)
	return clone(res), true
}

// Set stores a result, evicting an arbitrary entry when the cache is full.
func (c *ResultCache) Set(input string, res morse.Result) {
	if c.maxEntries <= 0 {
		return
	}
	hash := textutil.Hash(input)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.memory[hash]; !exists && len(c.memory) >= c.maxEntries {
		for k := range c.memory {
			delete(c.memory, k)
			break
		}
		log.Debug().Int("max", c.maxEntries).Msg("Result cache full, evicted entry")
	}
	c.memory[hash] = clone(res)
}

// Stats returns current counters.
func (c *ResultCache) Stats() Stats {
	c.mu.RLock()
	n := len(c.memory)
	c.mu.RUnlock()

	return Stats{Entries: n, Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// clone copies the Unknown slice so callers cannot mutate cached state.
func clone(res morse.Result) morse.Result {
	if res.Unknown != nil {
		res.Unknown = append([]string(nil), res.Unknown...)
	}
	return res
}
