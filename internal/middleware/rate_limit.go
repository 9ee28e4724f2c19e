package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/connecthub/connecthub-go/internal/dto/response"
)

// RateLimiterConfig holds rate limiter configuration
type RateLimiterConfig struct {
	Rate      int           // requests per period
	Period    time.Duration // time period
	BurstSize int           // max burst per client
}

// DefaultRateLimiterConfig returns the default configuration
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Rate:      100,
		Period:    time.Second,
		BurstSize: 50,
	}
}

// tokenBucket tracks the budget of a single client
type tokenBucket struct {
	tokens     float64
	lastRefill time.Time
}

// RateLimiter implements per-client token bucket rate limiting
type RateLimiter struct {
	config     RateLimiterConfig
	refillRate float64 // tokens per nanosecond
	buckets    map[string]*tokenBucket
	mutex      sync.Mutex
}

// NewRateLimiter creates a new RateLimiter instance
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		config:     config,
		refillRate: float64(config.Rate) / float64(config.Period.Nanoseconds()),
		buckets:    map[string]*tokenBucket{},
	}
}

// Allow reports whether the client identified by key has budget left
func (l *RateLimiter) Allow(key string) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := time.Now()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = &tokenBucket{tokens: float64(l.config.BurstSize), lastRefill: now}
		l.buckets[key] = bucket
	}

	elapsed := now.Sub(bucket.lastRefill)
	bucket.tokens += float64(elapsed.Nanoseconds()) * l.refillRate
	if bucket.tokens > float64(l.config.BurstSize) {
		bucket.tokens = float64(l.config.BurstSize)
	}
	bucket.lastRefill = now

	if bucket.tokens < 1 {
		return false
	}
	bucket.tokens--
	return true
}

// Middleware returns a gin middleware enforcing the limit per client IP
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, response.NewError[any]("rate limit exceeded"))
			c.Abort()
			return
		}
		c.Next()
	}
}
