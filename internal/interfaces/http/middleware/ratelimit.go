package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lerms/internal/infrastructure/ratelimit"
	sharedConfig "lerms/internal/shared/config"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

// RateLimit enforces the per-IP request limit through the redis-backed
// limiter. A limiter failure lets the request through; redis being down
// must not take the API with it.
func RateLimit(limiter ratelimit.RateLimiter, cfg *sharedConfig.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		allowed, err := limiter.Allow("ip:"+c.ClientIP(), ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RequestsPerMinute,
		})
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err, "client_ip", c.ClientIP())
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
