package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"

	envfile "github.com/osa911/contactapi/internal/config/env"
	"github.com/osa911/contactapi/internal/logging"
	"github.com/osa911/contactapi/internal/models"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"3000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5500"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Logging Configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// SMTP Configuration
	SMTPHost               string        `env:"SMTP_HOST"`
	SMTPPort               int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser               string        `env:"SMTP_USER"`
	SMTPPassword           string        `env:"SMTP_PASS"`
	SMTPFromEmail          string        `env:"SMTP_FROM_EMAIL"`
	SMTPTimeout            time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`
	SMTPInsecureSkipVerify bool          `env:"SMTP_INSECURE_SKIP_VERIFY" envDefault:"false"`
	FromName               string        `env:"FROM_NAME" envDefault:"DeliaNexus"`

	// Recipients
	AdminEmail   string   `env:"ADMIN_EMAIL"`
	AdminEmailCC []string `env:"ADMIN_EMAIL_CC" envSeparator:","`

	// Rate limiting
	ContactRateLimit  int           `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"15m"`
	GlobalRateRPS     int           `env:"GLOBAL_RATE_RPS" envDefault:"10"`
	GlobalRateBurst   int           `env:"GLOBAL_RATE_BURST" envDefault:"20"`

	// Branding used in rendered emails and API messages
	Brand Brand

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Brand describes the organisation behind the contact form
type Brand struct {
	Name          string `env:"BRAND_NAME" envDefault:"DeliaNexus"`
	Tagline       string `env:"BRAND_TAGLINE" envDefault:"Fashion • Digital • Health"`
	Location      string `env:"BRAND_LOCATION" envDefault:"Accra, Ghana"`
	Website       string `env:"BRAND_WEBSITE"`
	Phone         string `env:"SUPPORT_PHONE"`
	WhatsApp      string `env:"SUPPORT_WHATSAPP"`
	Email         string `env:"SUPPORT_EMAIL"`
	BusinessHours string `env:"BUSINESS_HOURS"`
}

// Model converts the brand settings to the model used by templates and services
func (b Brand) Model() models.Brand {
	return models.Brand{
		Name:          b.Name,
		Tagline:       b.Tagline,
		Location:      b.Location,
		Website:       b.Website,
		Phone:         b.Phone,
		WhatsApp:      b.WhatsApp,
		Email:         b.Email,
		BusinessHours: b.BusinessHours,
	}
}

// SMTPConfig is the subset of settings the mailer needs
type SMTPConfig struct {
	Host               string
	Port               int
	Username           string
	Password           string
	FromEmail          string
	FromName           string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// ImplicitTLS reports whether the connection is TLS from the first byte (port 465)
func (s SMTPConfig) ImplicitTLS() bool {
	return s.Port == 465
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envfile.LoadEnv()
	return Parse()
}

// Parse builds the configuration from the current environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.AdminEmailCC = compact(cfg.AdminEmailCC)
	cfg.AllowedOrigins = compact(cfg.AllowedOrigins)
	cfg.TrustedProxies = compact(cfg.TrustedProxies)

	if cfg.SMTPFromEmail == "" {
		cfg.SMTPFromEmail = cfg.SMTPUser
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	if cfg.ContactRateLimit <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_LIMIT must be positive, got %d", cfg.ContactRateLimit)
	}
	if cfg.ContactRateWindow <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_WINDOW must be positive, got %s", cfg.ContactRateWindow)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Logging returns the logger configuration
func (c *Config) Logging() *logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = strings.ToLower(c.LogLevel)
	lc.File = c.LogFile
	lc.Requests = c.LogRequests
	return lc
}

// SMTP returns the mailer configuration
func (c *Config) SMTP() SMTPConfig {
	return SMTPConfig{
		Host:               c.SMTPHost,
		Port:               c.SMTPPort,
		Username:           c.SMTPUser,
		Password:           c.SMTPPassword,
		FromEmail:          c.SMTPFromEmail,
		FromName:           c.FromName,
		Timeout:            c.SMTPTimeout,
		InsecureSkipVerify: c.SMTPInsecureSkipVerify,
	}
}

// MissingMailSettings lists the environment variables required for dispatch that are empty
func (c *Config) MissingMailSettings() []string {
	var missing []string
	if c.SMTPHost == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.SMTPPort <= 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if c.SMTPFromEmail == "" {
		missing = append(missing, "SMTP_FROM_EMAIL")
	}
	if c.AdminEmail == "" {
		missing = append(missing, "ADMIN_EMAIL")
	}
	return missing
}

func compact(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
