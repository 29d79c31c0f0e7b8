// Package config loads configuration for the veildemo program. The
// library itself is configured through options only; none of this
// reaches the component.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all demo configuration
type Config struct {
	Overlay OverlayConfig `mapstructure:"overlay"`
	Task    TaskConfig    `mapstructure:"task"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OverlayConfig holds the spinner overlay configuration
type OverlayConfig struct {
	Spinner     string `mapstructure:"spinner"`      // "dot", "line", "minidot", "jump", "pulse", "points", "globe", "moon", "meter"
	FadeInMs    int    `mapstructure:"fade_in_ms"`   // 0 disables fade-in
	FadeOutMs   int    `mapstructure:"fade_out_ms"`  // 0 disables fade-out
	Label       string `mapstructure:"label"`        // message under the spinner
	ShowElapsed bool   `mapstructure:"show_elapsed"` // show "Elapsed: N s"
}

// TaskConfig holds the simulated background task configuration
type TaskConfig struct {
	Seconds int `mapstructure:"seconds"` // how long each simulated job runs
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Overlay: OverlayConfig{
			Spinner:     "dot",
			FadeInMs:    150,
			FadeOutMs:   200,
			Label:       "Working...",
			ShowElapsed: true,
		},
		Task: TaskConfig{
			Seconds: 3,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "veildemo", "veildemo.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "veildemo", "veildemo.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "veildemo")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "veildemo")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("VEILDEMO")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}
