package routes

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/osa911/contactapi/internal/api/middleware"
	"github.com/osa911/contactapi/internal/logging"
	"github.com/osa911/contactapi/internal/utils"
)

// GlobalOptions configures middleware that applies to every route
type GlobalOptions struct {
	ServiceName string
	CORS        middleware.CORSConfig
	MaxBodySize int64
}

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	api := router.Group("/api")

	SetupHealthRoutes(api, h.Health)
	SetupContactRoutes(api, h.Contact, m)

	// Unknown paths and unsupported methods on known paths alike
	router.NoRoute(utils.HandleNotFound)

	logging.GetLogger().Debug("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, opts GlobalOptions) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(opts.ServiceName))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(opts.CORS))
	router.Use(middleware.LimitRequestBody(opts.MaxBodySize))
}
