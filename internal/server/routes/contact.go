package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/contactapi/internal/api/dto/common"
	"github.com/osa911/contactapi/internal/api/handlers"
	"github.com/osa911/contactapi/internal/api/middleware"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	// Public endpoint: per-client window, then the shared bucket, then validation, then dispatch.
	// A client over its window never drains the shared bucket. Health is not rate limited.
	router.POST("/contact",
		middleware.ClientRateLimit(m.ContactLimiter, common.MsgTooManyRequests),
		middleware.RateLimitMiddleware(m.GlobalLimit),
		m.Validation.ValidateContactRequest(),
		contact.Submit,
	)
}
