// Package config loads environment configuration for devwell processes.
// Variables are prefixed with DEVWELL_, e.g. DEVWELL_DB_PATH.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/SiddDevCS/Dev-Well/internal/localstate"
)

// Config holds process configuration for the wellness data layer.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default
	// on-device location under ~/.devwell.
	DBPath string `envconfig:"DB_PATH" default:""`

	// Executor tuning.
	Shards    int `envconfig:"SHARDS" default:"4"`
	QueueSize int `envconfig:"QUEUE_SIZE" default:"128"`

	// LogLevel is a zerolog level string: trace, debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// ResolveDefaults fills derived fields and validates the rest.
func (c *Config) ResolveDefaults() error {
	if c.DBPath == "" {
		p, err := localstate.DBPath()
		if err != nil {
			return fmt.Errorf("resolve default db path: %w", err)
		}
		c.DBPath = p
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unsupported DEVWELL_LOG_LEVEL: %s", c.LogLevel)
	}
	if c.Shards <= 0 {
		return fmt.Errorf("DEVWELL_SHARDS must be positive, got %d", c.Shards)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("DEVWELL_QUEUE_SIZE must be positive, got %d", c.QueueSize)
	}
	return nil
}

// Level returns the parsed zerolog level. Call after ResolveDefaults.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// New creates a Config by parsing DEVWELL_-prefixed environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("DEVWELL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
