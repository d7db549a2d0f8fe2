// Package server exposes the translator over a small JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"morse-translator/internal/cache"
	"morse-translator/internal/morse"
	"morse-translator/internal/translation"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const requestIDHeader = "X-Request-ID"

// Request is the body accepted by /translate and /classify.
type Request struct {
	Text string `json:"text"`
}

// ClassifyResponse is returned by /classify.
type ClassifyResponse struct {
	Language morse.Language `json:"language"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string      `json:"status"`
	Cache  cache.Stats `json:"cache"`
}

// Server routes HTTP requests to a translation.Service.
type Server struct {
	svc          *translation.Service
	maxBodyBytes int64
	router       *mux.Router
}

// New creates a Server. maxBodyBytes bounds request bodies.
func New(svc *translation.Service, maxBodyBytes int) *Server {
	s := &Server{svc: svc, maxBodyBytes: int64(maxBodyBytes)}

	m := mux.NewRouter()
	m.Use(s.requestLogger)
	m.HandleFunc("/translate", s.handleTranslate).Methods(http.MethodPost)
	m.HandleFunc("/classify", s.handleClassify).Methods(http.MethodPost)
	m.HandleFunc("/dictionary", s.handleDictionary).Methods(http.MethodGet)
	m.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router = m

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	log.Info().Msg("Server stopped")
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		logger := log.With().Str("request_id", id).Logger()
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))

		logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("Request handled")
	})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Translate(r.Context(), req.Text))
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ClassifyResponse{Language: s.svc.Classify(req.Text)})
}

func (s *Server) handleDictionary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, morse.Entries())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Cache: s.svc.CacheStats()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (Request, bool) {
	var req Request
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		log.Ctx(r.Context()).Warn().Err(err).Msg("Invalid request body")
		writeJSON(w, status, errorResponse{Error: "invalid request body"})
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("Write response")
	}
}
