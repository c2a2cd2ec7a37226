package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/rithikkrisna/wificreds/internal/creds"
)

// credentialsFile is the on-disk shape of the credentials file. The
// terminating sentinel is implicit; the table builder appends it.
type credentialsFile struct {
	Credentials []creds.Credential `mapstructure:"credentials"`
}

// LoadTable reads the credentials file at path and builds the immutable
// lookup table. Entry names are logged; passwords never are.
func LoadTable(path string, logger *slog.Logger) (*creds.Table, error) {
	if path == "" {
		return nil, fmt.Errorf("credentials file path is empty")
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("credentials file not readable: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var f credentialsFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	table := creds.New(f.Credentials...)
	if err := table.Validate(); err != nil {
		logger.Error("Credential table rejected",
			"file", path,
			"entries", len(f.Credentials),
			"error", err)
		return nil, fmt.Errorf("invalid credential table: %w", err)
	}

	// Surface configuration mistakes the lookup policy would otherwise
	// mask: duplicate names lose to the first match, and entries with an
	// empty ssid or password can never validate.
	seen := make(map[string]bool)
	for _, c := range table.Records() {
		if seen[c.Name] {
			logger.Warn("Duplicate credential name, first match wins", "name", c.Name)
		}
		seen[c.Name] = true

		if c.SSID == "" || c.Password == "" {
			logger.Warn("Credential has an empty ssid or password", "name", c.Name)
		}
	}

	logger.Debug("Credential table loaded",
		"file", path,
		"count", table.Count())

	return table, nil
}
