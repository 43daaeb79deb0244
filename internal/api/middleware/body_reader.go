package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/contactapi/internal/api/dto/common"
)

// DefaultMaxBodySize matches the usual JSON body limit of web frameworks (100 KB)
const DefaultMaxBodySize int64 = 100 * 1024

// LimitRequestBody rejects bodies larger than maxBytes. Declared lengths are checked up front,
// chunked bodies are cut off while reading and surface as a binding error.
func LimitRequestBody(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}

	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, common.NewErrorResponse(common.MsgRequestTooLarge))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
