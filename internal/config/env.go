package config

import (
	"os"
	"strings"
)

// Environment variable names recognized as fallback configuration sources.
const (
	EnvDatabaseDSN = "APP_DATABASE_DSN"
	EnvDBUser      = "APP_DB_USER"
	EnvDBPassword  = "APP_DB_PASS"
	EnvDevMode     = "DEV_MODE"
)

// parseEnv populates Config fields from environment variables. Empty or
// whitespace-only values are ignored so they never mask other sources.
func parseEnv(config *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvDatabaseDSN)); v != "" {
		config.DatabaseDSN = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBUser)); v != "" {
		config.DBUser = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBPassword)); v != "" {
		config.DBPassword = v
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv(EnvDevMode)), "true") {
		config.Dev = true
	}
}
