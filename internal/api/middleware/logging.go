package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/contactapi/internal/api/constants"
	"github.com/osa911/contactapi/internal/logging"
	"github.com/osa911/contactapi/internal/utils"
)

// RequestLogger is a middleware that logs request information.
// Output is controlled by the logger's request toggle (LOG_REQUESTS).
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// Process request
		c.Next()

		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
