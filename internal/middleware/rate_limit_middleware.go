package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/yourusername/bhp-api/internal/pkg/logger"
)

// RateLimitConfig описывает окно фиксированной длины для счетчика в Redis
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
	KeyPrefix   string
}

// DefaultWriteRateLimitConfig - лимит по умолчанию для изменяющих запросов
func DefaultWriteRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: 60,
		Window:      time.Minute,
		KeyPrefix:   "rl:write",
	}
}

// RateLimiter считает запросы вызывающего в Redis
type RateLimiter struct {
	redisClient redis.UniversalClient
	log         logger.Logger
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(redisClient redis.UniversalClient, log logger.Logger) *RateLimiter {
	return &RateLimiter{redisClient: redisClient, log: log}
}

// Limit ограничивает число изменяющих запросов одного вызывающего.
// Вызывающий - пользователь из токена (если RequireAuth уже отработал) или IP.
func (rl *RateLimiter) Limit(cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := cfg.KeyPrefix + ":" + callerKey(c)

		count, ttl, err := rl.hit(c.Request.Context(), key, cfg.Window)
		if err != nil {
			// Redis недоступен - пропускаем запрос (fail-open)
			rl.log.Warn("Redis error for key %s: %v. Allowing request (fail-open).", key, err)
			c.Next()
			return
		}

		remaining := cfg.MaxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		retryAfter := int(ttl.Seconds())
		if retryAfter <= 0 {
			retryAfter = int(cfg.Window.Seconds())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(retryAfter))

		if int(count) > cfg.MaxRequests {
			rl.log.Warn("Rate limit exceeded for %s: %d > %d", key, count, cfg.MaxRequests)
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"error_type":  "rate_limited",
				"retry_after": retryAfter,
			})
			return
		}
		c.Next()
	}
}

// hit увеличивает счетчик и возвращает его значение и остаток окна.
// TTL выставляется только первому запросу окна.
func (rl *RateLimiter) hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	count, err := rl.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if count == 1 {
		if err := rl.redisClient.Expire(ctx, key, window).Err(); err != nil {
			rl.log.Warn("Failed to set TTL for key %s: %v", key, err)
		}
		return count, window, nil
	}

	ttl, err := rl.redisClient.TTL(ctx, key).Result()
	if err != nil {
		// счетчик уже увеличен, остаток окна неизвестен
		ttl = window
	}
	return count, ttl, nil
}

func callerKey(c *gin.Context) string {
	if userID := c.GetString(ContextUserID); userID != "" {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}
