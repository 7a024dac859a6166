// Package config handles configuration loading for the focustrack demo.
// Values merge from a TOML file, FOCUSTRACK_* environment variables and
// command-line flags, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the demo's runtime configuration.
type Config struct {
	// Logging controls log output.
	Logging LoggingConfig `mapstructure:"logging"`

	// HoldWindow is how long a key press counts as held before a
	// release is synthesized.
	HoldWindow time.Duration `mapstructure:"hold_window"`

	// Script is an optional path to a Lua hook script.
	Script string `mapstructure:"script"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `mapstructure:"level"`
}

// Manager loads and holds the configuration.
type Manager struct {
	config *Config
	viper  *viper.Viper
}

// NewManager creates a configuration manager. If path is non-empty it
// names an explicit config file; otherwise the standard locations are
// searched.
func NewManager(path string) *Manager {
	v := viper.New()
	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "focustrack"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FOCUSTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{viper: v}
}

// Load reads the configuration. A missing config file is fine; defaults
// and environment variables still apply.
func (m *Manager) Load() error {
	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return err
	}

	m.config = cfg
	return nil
}

// Set overrides a single key, typically from a command-line flag. Call
// before Load.
func (m *Manager) Set(key string, value any) {
	m.viper.Set(key, value)
}

// Config returns the loaded configuration.
func (m *Manager) Config() *Config {
	return m.config
}

func (m *Manager) setDefaults() {
	m.viper.SetDefault("logging.level", "info")
	m.viper.SetDefault("hold_window", "500ms")
	m.viper.SetDefault("script", "")
}

func validate(cfg *Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", cfg.Logging.Level)
	}
	if cfg.HoldWindow <= 0 {
		return fmt.Errorf("hold_window must be positive, got %s", cfg.HoldWindow)
	}
	return nil
}
