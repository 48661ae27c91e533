package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Polsaker/dongerdong/internal/api/handlers"
	"github.com/Polsaker/dongerdong/pkg/logger"
	"github.com/Polsaker/dongerdong/pkg/ratelimit"
	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds rate limit configuration
type RateLimitConfig struct {
	Limiter ratelimit.Limiter
	Limit   int64                     // advertised in X-RateLimit-Limit
	KeyFunc func(*gin.Context) string // Function to extract rate limit key
}

// IPKeyFunc uses only IP address (for public endpoints)
func IPKeyFunc(c *gin.Context) string {
	return fmt.Sprintf("ip:%s", c.ClientIP())
}

// ActorKeyFunc limits commands per chat account, falling back to the IP
// address when the body names no actor.
func ActorKeyFunc(c *gin.Context) string {
	req, err := handlers.BindCommand(c)
	if err != nil || req.ActorID == "" {
		return IPKeyFunc(c)
	}
	return fmt.Sprintf("actor:%s:%s", c.Param("roomId"), req.ActorID)
}

// RateLimitMiddleware rejects requests over the limit with 429. Limiter
// errors fail open.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = IPKeyFunc
	}

	return func(c *gin.Context) {
		key := config.KeyFunc(c)

		allowed, err := config.Limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("Rate limit check failed, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(config.Limit, 10))

		if !allowed {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": fmt.Sprintf("Too many commands. Limit: %d", config.Limit),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CommandRateLimit limits chat commands per actor
func CommandRateLimit(limiter ratelimit.Limiter, capacity int64) gin.HandlerFunc {
	return RateLimitMiddleware(RateLimitConfig{
		Limiter: limiter,
		Limit:   capacity,
		KeyFunc: ActorKeyFunc,
	})
}
