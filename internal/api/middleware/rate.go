package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/osa911/contactapi/internal/api/dto/common"
	"github.com/osa911/contactapi/internal/ratelimit"
	"github.com/osa911/contactapi/internal/service"
	"github.com/osa911/contactapi/internal/utils"
)

// RateLimitConfig defines configuration for the global rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// RateLimitMiddleware caps the total request rate of the process with a token bucket.
// It protects the service as a whole; per-client limits are applied by ClientRateLimit.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.RPS <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.Header("Retry-After", "1")
			utils.HandleAPIError(c, fmt.Errorf("global limit of %d rps: %w", config.RPS, service.ErrRateLimited))
			return
		}

		c.Next()
	}
}

// ClientRateLimit bounds requests per client address with a fixed window.
// Rejected requests never reach validation or dispatch.
func ClientRateLimit(limiter *ratelimit.WindowLimiter, message string) gin.HandlerFunc {
	if message == "" {
		message = common.MsgTooManyRequests
	}

	return func(c *gin.Context) {
		key := utils.GetRealIP(c)
		decision := limiter.Allow(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			retryAfter := int(decision.RetryAfter.Round(time.Second) / time.Second)
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			err := fmt.Errorf("client %s over %d requests per window: %w", key, decision.Limit, service.ErrRateLimited)
			utils.RespondError(c, err, http.StatusTooManyRequests, message)
			return
		}

		c.Next()
	}
}
