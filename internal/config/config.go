package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete projscope configuration
type Config struct {
	Inventory InventoryConfig `mapstructure:"inventory"`
	TUI       TUIConfig       `mapstructure:"tui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// InventoryConfig controls the inventory service connection
type InventoryConfig struct {
	// BaseURL is the root URL of the inventory API
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds bounds each request to the inventory service
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// MaxResultLines limits how many project rows the results area shows
	MaxResultLines int `mapstructure:"max_result_lines"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Level is the minimum log level: DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// Dir is the directory for the log file; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		Inventory: InventoryConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 10,
		},
		TUI: TUIConfig{
			MaxResultLines: 200,
		},
		Logging: LoggingConfig{
			Level: "INFO",
			Dir:   filepath.Join(ConfigDir(), "logs"),
		},
	}
}

// Timeout returns the inventory request timeout as a duration.
func (c *InventoryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SetDefaults registers all default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("inventory.base_url", defaults.Inventory.BaseURL)
	viper.SetDefault("inventory.timeout_seconds", defaults.Inventory.TimeoutSeconds)

	viper.SetDefault("tui.max_result_lines", defaults.TUI.MaxResultLines)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals and validates the current viper configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if
// unmarshaling fails.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the projscope configuration directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "projscope")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".projscope"
	}
	return filepath.Join(home, ".config", "projscope")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
