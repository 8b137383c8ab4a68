package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"hrhub/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP using token buckets.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	window   int // seconds, for header calculations
	requests int
}

// NewRateLimiter creates a new rate limiter middleware. Requests per
// window becomes the per-second refill rate; Burst caps how many
// requests a client can issue back to back.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	perSecond := rate.Limit(float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Window))

	burst := cfg.RateLimit.Burst
	if burst < 1 {
		burst = cfg.RateLimit.Requests
	}

	rl := &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     perSecond,
		burst:    burst,
		window:   cfg.RateLimit.Window,
		requests: cfg.RateLimit.Requests,
	}

	go rl.sweep(time.Hour)

	return rl
}

// limiterFor returns the token bucket for the given client key,
// creating a full one on first sight.
func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// sweep periodically drops all buckets so idle clients do not
// accumulate forever.
func (rl *RateLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		rl.limiters = make(map[string]*rate.Limiter)
		rl.mu.Unlock()
	}
}

// Middleware returns a Gin middleware function that implements rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Swagger documentation is not throttled
		if strings.HasPrefix(c.Request.URL.Path, "/swagger/") {
			c.Next()
			return
		}

		limiter := rl.limiterFor(c.ClientIP())

		now := time.Now()
		if !limiter.AllowN(now, 1) {
			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.requests))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(time.Duration(rl.window)*time.Second).Unix()))
			c.Header("Retry-After", fmt.Sprintf("%d", rl.window))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": fmt.Sprintf("%ds", rl.window),
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		if remaining > rl.requests {
			remaining = rl.requests
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.requests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(time.Duration(rl.window)*time.Second).Unix()))

		c.Next()
	}
}
