package config

import (
	"encoding/json"
	"os"

	"moondb/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its non-empty fields are copied into the
// runtime Config.
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	DBUser      string `json:"db_user"`
	DBPassword  string `json:"db_password"`
	Dev         bool   `json:"dev"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics: a requested but broken config
// file is a startup defect, not a condition to continue from.
//
// Only fields the file actually sets are copied, so a partial file does not
// erase values already resolved from the environment.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.DBUser != "" {
		config.DBUser = c.DBUser
	}
	if c.DBPassword != "" {
		config.DBPassword = c.DBPassword
	}
	if c.Dev {
		config.Dev = true
	}
}
