package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting for the storefront client.
type Config struct {
	// APIBaseURL is the origin of the storefront REST backend. All request
	// paths are resolved against it.
	APIBaseURL string `env:"API_BASE_URL, default=http://127.0.0.1:8000"`
	Env        string `env:"ENV,          default=development"`
	LogLevel   string `env:"LOG_LEVEL,    default=info"`

	// DebugAddr is the listen address for the operational endpoint
	// (/health, /metrics). Empty disables the debug server.
	DebugAddr string `env:"DEBUG_ADDR, default=:9090"`
}

// IsDevelopment reports whether the client runs in development mode
// (pretty console logs).
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
