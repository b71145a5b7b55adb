// Package config handles configuration for the console application,
// including defaults, environment fallback, JSON overlay, and command-line
// flags.
package config

import (
	"fmt"

	"moondb/internal/common"
)

// Config holds runtime settings for the moon mission console.
//
// Fields:
//   - DatabaseDSN: connection string of the relational store (pgx URL form).
//   - DBUser / DBPassword: credentials for the relational store.
//   - Dev: run against an embedded development database instead of an
//     external server.
type Config struct {
	DatabaseDSN string
	DBUser      string
	DBPassword  string
	Dev         bool
}

// LoadDefaults populates Config with startup defaults. The store settings
// intentionally stay empty: they must come from the environment, a JSON
// file, or flags, and startup fails when none of them supplies a value.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = ""
	c.DBUser = ""
	c.DBPassword = ""
	c.Dev = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and finally command-line
// flags. Explicitly set sources (JSON, flags) take precedence over the
// environment fallback.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required store setting is present. Dev mode is
// exempt: the embedded database needs no external connection settings.
func (c *Config) Validate() error {
	if c.Dev {
		return nil
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("%w: database DSN (APP_DATABASE_DSN or -d)", common.ErrMissingConfig)
	}
	if c.DBUser == "" {
		return fmt.Errorf("%w: database user (APP_DB_USER or -u)", common.ErrMissingConfig)
	}
	if c.DBPassword == "" {
		return fmt.Errorf("%w: database password (APP_DB_PASS or -p)", common.ErrMissingConfig)
	}
	return nil
}
