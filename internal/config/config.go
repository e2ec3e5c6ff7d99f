package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config aggregates everything the server reads from the environment.
type Config struct {
	// Port accepts "8080", ":8080", or "127.0.0.1:8080".
	Port string `env:"PORT" envDefault:"8080"`
	// BaseURL, when set, is used verbatim when building share links.
	// Otherwise links are derived from the incoming request host.
	BaseURL string `env:"QUIZ_BASE_URL"`
	// OwnerPassword is the single shared constant gating the setup page.
	OwnerPassword string `env:"QUIZ_OWNER_PASSWORD" envDefault:"game"`
	// DefaultOwner is the display name used when the owner leaves it blank.
	DefaultOwner string `env:"QUIZ_DEFAULT_OWNER" envDefault:"Charles"`
	// HistoryPath is the file slot holding the saved-session history.
	HistoryPath string `env:"QUIZ_HISTORY_PATH" envDefault:"quiz_history.json"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if strings.Contains(cfg.Port, " ") {
		return nil, fmt.Errorf("invalid PORT value: %q", cfg.Port)
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	return &cfg, nil
}

// Addr returns the HTTP listen address derived from Port.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
