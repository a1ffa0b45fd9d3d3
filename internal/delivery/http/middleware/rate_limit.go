package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/pkg/audit"
	"go-ats-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
	// Shared counter store; nil uses the in-process fallback
	Redis *goredis.Client
	Audit *audit.Logger
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func clientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// IntakeRateLimitConfig limits candidate submissions per client IP.
func IntakeRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:intake:",
		KeyFunc:   clientIPKey,
	}
}

// UploadRateLimitConfig returns config for file upload endpoints
func UploadRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:upload:",
		KeyFunc:   clientIPKey,
	}
}

type rateLimiter struct {
	config RateLimitConfig
	store  sync.Map
	// sweeps counts requests since the last expired-entry cleanup
	sweeps int64
	sweepM sync.Mutex
}

// RateLimitMiddleware creates a rate limiting middleware with the given config.
// Uses Redis when configured, falls back to in-memory when not or when Redis errors
// on a fail-open limiter.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = clientIPKey
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	rl := &rateLimiter{config: config}

	return func(c *gin.Context) {
		if rl.config.Limit <= 0 {
			c.Next()
			return
		}

		fullKey := rl.config.KeyPrefix + rl.config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time

		if rl.config.Redis != nil {
			var err error
			count, resetAt, err = rl.checkRedis(c.Request.Context(), fullKey)
			if err != nil {
				logger.Log.Warn("Rate limit store unavailable", "error", err.Error(), "key_prefix", rl.config.KeyPrefix)
				if rl.config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = rl.checkInMemory(fullKey, now)
			}
		} else {
			count, resetAt = rl.checkInMemory(fullKey, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > rl.config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			rl.config.Audit.RateLimitTriggered(c.Request.Context(), c.ClientIP(), c.FullPath())

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(rl.config.Limit-count))
		c.Next()
	}
}

// checkRedis checks rate limit using Redis with atomic Lua script
func (rl *rateLimiter) checkRedis(ctx context.Context, key string) (int, time.Time, error) {
	ttlSeconds := int(rl.config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := rl.config.Redis.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// checkInMemory checks rate limit using the in-process store
func (rl *rateLimiter) checkInMemory(key string, now time.Time) (int, time.Time) {
	rl.maybeSweep(now)

	entryI, _ := rl.store.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(rl.config.Window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(rl.config.Window)
	}
	entry.count++

	return entry.count, entry.resetAt
}

// maybeSweep drops expired entries every 1000 requests.
func (rl *rateLimiter) maybeSweep(now time.Time) {
	rl.sweepM.Lock()
	rl.sweeps++
	due := rl.sweeps >= 1000
	if due {
		rl.sweeps = 0
	}
	rl.sweepM.Unlock()
	if !due {
		return
	}

	rl.store.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			rl.store.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}
