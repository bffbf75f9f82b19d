// Package config resolves the client configuration from defaults, an
// optional config file and PETCARE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultBaseURL = "http://localhost:3000/api"
	defaultTimeout = 30 * time.Second
)

// Config is the resolved client configuration.
type Config struct {
	BaseURL string
	DBPath  string
	KeyPath string
	Timeout time.Duration
}

// Load resolves configuration with the precedence: env vars
// (PETCARE_API_URL, PETCARE_TIMEOUT, PETCARE_DB, PETCARE_KEY_FILE) over
// $HOME/.petcare/config.yaml over built-in defaults. Flags in cmd/petcare
// override the result afterwards.
func Load() (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	configDir := filepath.Join(home, ".petcare")

	v.SetDefault("api_url", defaultBaseURL)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("db", filepath.Join(configDir, "petcare.db"))
	v.SetDefault("key_file", filepath.Join(configDir, "device.key"))

	v.SetEnvPrefix("PETCARE")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		BaseURL: v.GetString("api_url"),
		Timeout: v.GetDuration("timeout"),
		DBPath:  v.GetString("db"),
		KeyPath: v.GetString("key_file"),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg, nil
}
