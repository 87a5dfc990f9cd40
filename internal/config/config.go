// Package config defines all configuration structures for opportunity-canvas.
// No I/O or parsing logic lives here — only plain data types and validation.
package config

import (
	"fmt"
	"time"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatasetConfig holds the canvas CSV source parameters.
type DatasetConfig struct {
	// Path is the CSV file the canvas is loaded from.
	Path string `mapstructure:"path"`

	// Watch enables hot-reloading the dataset when the file changes on disk.
	Watch bool `mapstructure:"watch"`

	// WatchDebounce coalesces bursts of filesystem events (editors often
	// write a file several times in quick succession) into a single reload.
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

// DashboardConfig holds the text shown on the dashboard page.  Defaults
// reproduce the original Opportunity Canvas study; operators override them
// per dataset.
type DashboardConfig struct {
	Title       string `mapstructure:"title"`
	Theme       string `mapstructure:"theme"`
	Opportunity string `mapstructure:"opportunity"`
	Author      string `mapstructure:"author"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
}

// MetricsConfig holds Prometheus exposition parameters.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Config is the root configuration structure for the application.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Dataset.Path == "" {
		return fmt.Errorf("config: dataset.path is required")
	}
	if c.Dataset.Watch && c.Dataset.WatchDebounce <= 0 {
		return fmt.Errorf("config: dataset.watch_debounce must be positive when watching, got %s", c.Dataset.WatchDebounce)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}

	return nil
}
