package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mangedesk/internal/infrastructure/ratelimit"
	"mangedesk/internal/shared/logger"
	"mangedesk/internal/shared/utils"
)

// RateLimit limits requests per client IP. Used on the auth routes so
// credential guessing and reset-mail flooding stay cheap to absorb.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			// A broken limiter must not take the whole API down.
			log.Warnw("rate limiter unavailable", "error", err)
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
