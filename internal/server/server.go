package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/contactapi/internal/api/handlers"
	"github.com/osa911/contactapi/internal/api/middleware"
	"github.com/osa911/contactapi/internal/config"
	"github.com/osa911/contactapi/internal/logging"
	"github.com/osa911/contactapi/internal/ratelimit"
	"github.com/osa911/contactapi/internal/server/routes"
	"github.com/osa911/contactapi/internal/service"
	"github.com/osa911/contactapi/internal/templates"
)

// ServiceName identifies the API in traces and logs
const ServiceName = "contact-api"

const shutdownTimeout = 30 * time.Second

// Verifier checks connectivity to the mail relay without sending
type Verifier interface {
	Verify(ctx context.Context) error
}

// Dependencies lets callers replace collaborators, mainly for tests
type Dependencies struct {
	// Mailer defaults to an SMTP mailer built from the configuration
	Mailer service.Mailer
	// Logger defaults to the process-wide logger
	Logger *logging.Logger
}

// Server represents the HTTP server
type Server struct {
	cfg            *config.Config
	logger         *logging.Logger
	router         *gin.Engine
	mailer         service.Mailer
	contactService *service.ContactService
	contactLimiter *ratelimit.WindowLimiter
}

// NewServer wires every component of the API
func NewServer(cfg *config.Config, deps Dependencies) (*Server, error) {
	logger := deps.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	brand := cfg.Brand.Model()
	renderer, err := templates.NewRenderer(brand, time.Local)
	if err != nil {
		return nil, err
	}

	mailer := deps.Mailer
	if mailer == nil {
		mailer = service.NewSMTPMailer(cfg.SMTP())
	}

	missing := cfg.MissingMailSettings()
	if len(missing) > 0 {
		logger.Warn("Mail delivery is not configured, missing: %s", strings.Join(missing, ", "))
	}

	contactService := service.NewContactService(service.ContactServiceConfig{
		From:       service.Address{Name: cfg.FromName, Email: cfg.SMTPFromEmail},
		AdminEmail: cfg.AdminEmail,
		AdminCC:    cfg.AdminEmailCC,
		Missing:    missing,
	}, mailer, renderer)

	contactLimiter := ratelimit.NewWindowLimiter(ratelimit.WindowConfig{
		Limit:  cfg.ContactRateLimit,
		Window: cfg.ContactRateWindow,
	})

	routes.SetupGlobalMiddleware(router, logger, routes.GlobalOptions{
		ServiceName: ServiceName,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.AllowedOrigins,
		},
		MaxBodySize: middleware.DefaultMaxBodySize,
	})

	routes.Setup(router, &routes.Handlers{
		Health:  handlers.NewHealthHandler(brand.Name),
		Contact: handlers.NewContactHandler(contactService),
	}, &routes.Middleware{
		Validation:     middleware.NewValidationMiddleware(),
		ContactLimiter: contactLimiter,
		GlobalLimit: middleware.RateLimitConfig{
			RPS:   cfg.GlobalRateRPS,
			Burst: cfg.GlobalRateBurst,
		},
	})

	return &Server{
		cfg:            cfg,
		logger:         logger,
		router:         router,
		mailer:         mailer,
		contactService: contactService,
		contactLimiter: contactLimiter,
	}, nil
}

// Handler returns the HTTP handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	defer s.Close()

	if s.contactService.Configured() {
		go s.verifyMailer(ctx)
	}

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server running on port %s (%s)", s.cfg.Port, s.cfg.Environment)
		if s.cfg.SMTPHost != "" {
			s.logger.Info("Email service configured with %s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// In-flight submissions finish their dispatch before the server exits
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Close releases background resources
func (s *Server) Close() {
	s.contactLimiter.Stop()
}

// verifyMailer probes the relay once at startup. Failure is only reported, the server keeps running.
func (s *Server) verifyMailer(ctx context.Context) {
	verifier, ok := s.mailer.(Verifier)
	if !ok {
		return
	}

	timeout := 3 * s.cfg.SMTPTimeout
	if timeout <= 0 {
		timeout = 3 * service.DefaultSMTPTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := verifier.Verify(ctx); err != nil {
		s.logger.Warn("SMTP verification failed: %v", err)
		s.logger.Warn("Email service may not work. Check SMTP credentials and settings.")
		return
	}
	s.logger.Info("SMTP server is ready to send emails")
}
