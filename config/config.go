package config

import (
	"log"
	"os"
	"strings"

	"github.com/creasty/defaults"
)

// Config holds the application configuration
type Config struct {
	ServerPort string `default:"8080"`
	BaseURL    string `default:"http://localhost:8080"`

	MySQLDSN string
	RedisURL string `default:"localhost:6379"`

	StripeSecretKey string
	CloudinaryURL   string

	// EmailJS credentials for the order-confirmation email
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSUserID     string

	// SessionSecret signs cart-session tokens
	SessionSecret string `default:"change_this_secret"`

	// RunsCSVPath points at the flat community-runs file. When empty and
	// MySQL is configured, runs are read from the community_runs table.
	RunsCSVPath string

	// DevMode swaps every external service (MySQL, Redis, Stripe,
	// Cloudinary) for an in-process substitute.
	DevMode bool
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		log.Fatalf("Failed to apply config defaults: %v", err)
	}

	setIfPresent(&cfg.ServerPort, "PORT")
	setIfPresent(&cfg.BaseURL, "BASE_URL")
	setIfPresent(&cfg.MySQLDSN, "MYSQL_DSN")
	setIfPresent(&cfg.RedisURL, "REDIS_URL")
	setIfPresent(&cfg.StripeSecretKey, "STRIPE_SECRET_KEY")
	setIfPresent(&cfg.CloudinaryURL, "CLOUDINARY_URL")
	setIfPresent(&cfg.EmailJSServiceID, "EMAILJS_SERVICE_ID")
	setIfPresent(&cfg.EmailJSTemplateID, "EMAILJS_TEMPLATE_ID")
	setIfPresent(&cfg.EmailJSUserID, "EMAILJS_USER_ID")
	setIfPresent(&cfg.SessionSecret, "SESSION_SECRET")
	setIfPresent(&cfg.RunsCSVPath, "RUNS_CSV_PATH")

	if v := os.Getenv("DEV_MODE"); v == "1" || strings.ToLower(v) == "true" {
		cfg.DevMode = true
	}

	if !cfg.DevMode {
		if cfg.MySQLDSN == "" || cfg.RedisURL == "" {
			log.Fatal("env MYSQL_DSN and REDIS_URL must be set (or set DEV_MODE=true to run without external services)")
		}
	}

	return cfg
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
