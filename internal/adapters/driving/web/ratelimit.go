package web

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/wordbook/internal/logger"
)

// RateLimitConfig holds rate limiting configuration for the server.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	// Zero or negative disables limiting.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// limiter is a token-bucket limiter shared across all requests.
// Its configuration can be swapped at runtime (config reload).
type limiter struct {
	mu sync.Mutex
	// rl is nil while limiting is disabled.
	rl *rate.Limiter
}

func newLimiter(cfg RateLimitConfig) *limiter {
	l := &limiter{}
	l.update(cfg)
	return l
}

// update replaces the limiter configuration. The bucket restarts full.
func (l *limiter) update(cfg RateLimitConfig) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cfg.RequestsPerSecond <= 0 {
		l.rl = nil
		return
	}

	burst := cfg.BurstSize
	if burst < 1 {
		burst = 1
	}
	l.rl = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
}

// allow reports whether a request may proceed right now.
func (l *limiter) allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rl == nil || l.rl.Allow()
}

// middleware rejects over-budget requests with a 429 instead of
// queueing; a page load should fail fast rather than stall.
func (l *limiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow() {
			logger.Warn("Rate limit exceeded: %s %s", r.Method, r.URL.Path)
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
