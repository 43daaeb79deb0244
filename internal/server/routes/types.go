package routes

import (
	"github.com/osa911/contactapi/internal/api/handlers"
	"github.com/osa911/contactapi/internal/api/middleware"
	"github.com/osa911/contactapi/internal/ratelimit"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Contact *handlers.ContactHandler
}

// Middleware contains the route-level middleware
type Middleware struct {
	Validation     *middleware.ValidationMiddleware
	ContactLimiter *ratelimit.WindowLimiter
	GlobalLimit    middleware.RateLimitConfig
}
