package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/contactapi/internal/api/handlers"
)

// SetupHealthRoutes configures health check endpoints
func SetupHealthRoutes(router *gin.RouterGroup, health *handlers.HealthHandler) {
	router.GET("/health", health.Check)
}
