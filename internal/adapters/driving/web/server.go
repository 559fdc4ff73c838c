package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/wordbook/internal/logger"
)

// shutdownTimeout bounds how long Start waits for in-flight requests
// once the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Config holds the web server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// RateLimit configures the request rate limiter.
	RateLimit RateLimitConfig
}

// Server serves the Wordbook HTTP surface.
type Server struct {
	ports   *Ports
	server  *http.Server
	limiter *limiter
}

// NewServer creates a new web server for the given ports.
func NewServer(cfg Config, ports *Ports) *Server {
	s := &Server{
		ports:   ports,
		limiter: newLimiter(cfg.RateLimit),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /words", s.handleWords)
	mux.HandleFunc("GET /words/{id}", s.handleWordShow)
	mux.HandleFunc("GET /search", s.handleSearch)

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.limiter.middleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// UpdateRateLimit swaps the rate limiter configuration at runtime.
// Used by the config reload path so tuning does not need a restart.
func (s *Server) UpdateRateLimit(cfg RateLimitConfig) {
	s.limiter.update(cfg)
}

// Handler returns the server's root handler. Useful for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("Listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
