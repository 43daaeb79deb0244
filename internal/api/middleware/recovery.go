package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/osa911/contactapi/internal/api/constants"
	"github.com/osa911/contactapi/internal/api/dto/common"
	"github.com/osa911/contactapi/internal/logging"
)

// Recovery turns a panic into a 500 envelope and logs the stack trace
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error("[PANIC] %s %s | %s | %v\n%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.GetString(constants.ContextKeyRequestID),
			recovered,
			debug.Stack(),
		)

		c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(common.MsgInternal))
	})
}
