package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobdash-backend/internal/delivery/http/response"
)

// RateLimitConfig holds configuration for the fixed-window limiter.
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
}

// DefaultRateLimitConfig returns sensible defaults for the dashboard API.
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:  limit,
		Window: window,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// RateLimiter is an in-memory fixed-window limiter with a cancellable
// cleanup task. Single-instance state is enough here: the dashboard talks to
// one backend.
type RateLimiter struct {
	cfg     RateLimitConfig
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	stop    chan struct{}
}

func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		cfg:     cfg,
		entries: make(map[string]*rateLimitEntry),
		stop:    make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Middleware rejects requests over the limit with 429 and standard
// rate-limit headers.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.cfg.KeyFunc(c)
		count, resetAt := rl.hit(key)

		remaining := rl.cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > rl.cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(time.Until(resetAt).Seconds())+1))
			response.Error(c, http.StatusTooManyRequests, "Too many requests", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) hit(key string) (int, time.Time) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	e, ok := rl.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &rateLimitEntry{resetAt: now.Add(rl.cfg.Window)}
		rl.entries[key] = e
	}
	e.count++
	return e.count, e.resetAt
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			rl.mu.Lock()
			for key, e := range rl.entries {
				if now.After(e.resetAt) {
					delete(rl.entries, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stop:
			return
		}
	}
}

// Close stops the background cleanup task.
func (rl *RateLimiter) Close() {
	close(rl.stop)
}
