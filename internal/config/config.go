// Package config loads the process configuration from the environment.
package config

import (
	"github.com/spf13/viper"
)

// DefaultCategories is the category enumeration used when the environment
// does not provide one. Categories are a fixed closed set, they are never
// created dynamically at runtime.
var DefaultCategories = []string{"Food", "Transport", "Entertainment", "Utilities", "Others"}

// Config holds everything the process needs to start.
type Config struct {
	DBPath           string   // Path of the SQLite database file
	Port             string   // Port the HTTP server listens on
	GinMode          string   // Mode for gin, "release" or "debug"
	LogFormat        string   // "human" for console output, everything else logs JSON
	CORSAllowOrigins string   // Space separated list of allowed CORS origins, empty disables CORS
	Categories       []string // The closed category enumeration
}

// Load reads the configuration from environment variables, applying
// defaults for everything that is not set.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("db_path", "data/spendledger.db")
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_format", "")
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("categories", DefaultCategories)

	v.AutomaticEnv()

	cfg := Config{
		DBPath:           v.GetString("db_path"),
		Port:             v.GetString("port"),
		GinMode:          v.GetString("gin_mode"),
		LogFormat:        v.GetString("log_format"),
		CORSAllowOrigins: v.GetString("cors_allow_origins"),
		Categories:       v.GetStringSlice("categories"),
	}

	return cfg, nil
}
