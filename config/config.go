package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// Site identity
	SiteName   string `env:"SITE_NAME" envDefault:"Sivagireeswaran S"`
	SiteURL    string `env:"SITE_URL" envDefault:"http://localhost:8080"`
	SiteAuthor string `env:"SITE_AUTHOR" envDefault:"Sivagireeswaran S"`

	// EmailJS dispatch, all supplied externally
	EmailJSServiceID  string `env:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	EmailJSPublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
	EmailJSPrivateKey string `env:"EMAILJS_PRIVATE_KEY"`
	EmailJSEndpoint   string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`

	// Redis Configuration
	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Rate Limiting Configuration
	RateLimitWindowSeconds    int `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
	RateLimitContactThreshold int `env:"RATE_LIMIT_CONTACT_THRESHOLD" envDefault:"5"`
	RateLimitGlobalThreshold  int `env:"RATE_LIMIT_GLOBAL_THRESHOLD" envDefault:"300"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	ContactSessionTTLMinutes int `env:"CONTACT_SESSION_TTL_MINUTES" envDefault:"30"`
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() (*Config, error) {
	// Missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Avoid double slashes when building absolute links.
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	for i, o := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimRight(strings.TrimSpace(o), "/")
	}
	if cfg.RateLimitWindowSeconds <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be positive, got %d", cfg.RateLimitWindowSeconds)
	}
	return cfg, nil
}

// IsRelease reports whether the process runs in production mode.
func (c *Config) IsRelease() bool {
	return c.AppEnv == "production" || c.AppEnv == "release"
}

// EmailJSConfigured mirrors the dispatcher's own check so startup can warn early.
func (c *Config) EmailJSConfigured() bool {
	return c.EmailJSServiceID != "" && c.EmailJSTemplateID != "" && c.EmailJSPublicKey != ""
}

// MissingEmailJSKeys names the dispatch settings that are absent.
func (c *Config) MissingEmailJSKeys() []string {
	var missing []string
	if c.EmailJSServiceID == "" {
		missing = append(missing, "EMAILJS_SERVICE_ID")
	}
	if c.EmailJSTemplateID == "" {
		missing = append(missing, "EMAILJS_TEMPLATE_ID")
	}
	if c.EmailJSPublicKey == "" {
		missing = append(missing, "EMAILJS_PUBLIC_KEY")
	}
	return missing
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func (c *Config) ContactSessionTTL() time.Duration {
	return time.Duration(c.ContactSessionTTLMinutes) * time.Minute
}
