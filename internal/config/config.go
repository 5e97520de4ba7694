package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters. Every field can be set
// through a STOCKPILE_-prefixed environment variable; command-line flags
// in main take precedence.
type Config struct {
	ServerURL   string        `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	DBPath      string        `env:"DB_PATH" envDefault:"stockpile.db"`
	LogLevel    int           `env:"LOG_LEVEL" envDefault:"0"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "STOCKPILE_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
