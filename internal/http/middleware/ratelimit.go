package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// Limiter is satisfied by both the in-memory and the Redis-backed limiter.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

// MemoryLimiter is a fixed-window counter keyed by caller-provided strings.
// It is the default when no Redis URL is configured.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	until time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{windows: make(map[string]*window)}
}

func (l *MemoryLimiter) Allow(key string, limit int, windowSize time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	w, ok := l.windows[key]
	if !ok || now.After(w.until) {
		l.windows[key] = &window{count: 1, until: now.Add(windowSize)}
		return true
	}
	if w.count >= limit {
		return false
	}
	w.count++
	return true
}

// RateLimit wraps a handler with a per-key limit. An empty key or nil limiter
// disables limiting for that request.
func RateLimit(limiter Limiter, keyFn func(*http.Request) string, limit int, windowSize time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}
			key := keyFn(r)
			if key == "" || limiter.Allow(key, limit, windowSize) {
				next.ServeHTTP(w, r)
				return
			}
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
}

func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
