package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the CLI. Everything is optional:
// with no environment set, requests go to the empty base URL (same-origin
// behind a reverse proxy, the web deployment default).
type Config struct {
	// APIBase is the explicit API base URL (highest priority),
	// e.g. "https://api.lankalive.lk" or "http://localhost:5000".
	APIBase string `envconfig:"LANKALIVE_API_BASE"`

	// Domain builds an HTTPS base URL when APIBase is unset,
	// e.g. "lankalive.lk" becomes "https://lankalive.lk".
	Domain string `envconfig:"LANKALIVE_DOMAIN"`

	Logging LoggingConfig
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"console"` // json, console
}

// Load loads configuration from environment variables.
// .env files are loaded first (fails silently if files don't exist).
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

// BaseURL resolves the API base URL once at startup:
//  1. explicit APIBase override, used verbatim
//  2. https:// + Domain
//  3. empty string (same-origin requests via a reverse proxy)
func (c *Config) BaseURL() string {
	if c.APIBase != "" {
		return c.APIBase
	}
	if c.Domain != "" {
		return "https://" + c.Domain
	}
	return ""
}
