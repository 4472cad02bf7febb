package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Format    string   `json:"format" mapstructure:"format"`
	NullToken string   `json:"null_token" mapstructure:"null_token"`
	Database  Database `json:"database" mapstructure:"database"`
}

type Database struct {
	URLEnv string `json:"url_env" mapstructure:"url_env"`
	Table  string `json:"table" mapstructure:"table"`
}

// Load unmarshals whatever viper picked up (config file, env) and fills in
// defaults.
func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Format == "" {
		cfg.Format = "csv"
	}
	if cfg.NullToken == "" {
		cfg.NullToken = "null"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}
