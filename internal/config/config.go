package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the wificreds tool
type Config struct {
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// CredentialsConfig locates the credentials file
type CredentialsConfig struct {
	File string `mapstructure:"file"` // kept out of version control, like credentials.h
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // json | text
}

// Load loads configuration from environment variables and defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("credentials.file", "./credentials.yaml")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Bind environment variables with WIFICREDS_ prefix
	v.SetEnvPrefix("WIFICREDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Credentials.File == "" {
		return fmt.Errorf("credentials.file must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be debug, info, warn, or error")
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("logging.format must be json or text")
	}

	return nil
}
