// Package config holds the tunable parameters of the FinSight mockup.
package config

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap/zapcore"
)

// Config contains configurable parameters for the application.
// Use DefaultConfig() to get sensible defaults, then override as needed.
type Config struct {
	// Upload simulation
	AnalysisDelay time.Duration // Artificial "analyzing" delay before auto-navigation (default: 2s)

	// Logging
	LogFile  string // Log destination; empty disables logging in the TUI (default: "")
	LogLevel string // zap level name (default: "info")

	// Data
	RatiosFile string // Optional YAML ratio set replacing the mock data (default: "")

	// Chart export
	ChartWidth     int     // PNG width in pixels (default: 800)
	ChartHeight    int     // PNG height in pixels (default: 400)
	ChartThreshold float64 // Values below render in the warning colour (default: 1.0)

	// Rendering
	WordWrap int // Help page markdown wrap column (default: 80)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		AnalysisDelay: 2 * time.Second,

		LogLevel: "info",

		ChartWidth:     800,
		ChartHeight:    400,
		ChartThreshold: 1.0,

		WordWrap: 80,
	}
}

// WithAnalysisDelay returns a copy of the config with a modified analysis delay.
func (c Config) WithAnalysisDelay(d time.Duration) Config {
	c.AnalysisDelay = d
	return c
}

// WithLogFile returns a copy of the config logging to path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// WithLogLevel returns a copy of the config with a modified log level.
func (c Config) WithLogLevel(level string) Config {
	c.LogLevel = level
	return c
}

// WithRatiosFile returns a copy of the config reading ratios from path.
func (c Config) WithRatiosFile(path string) Config {
	c.RatiosFile = path
	return c
}

// WithChartSize returns a copy of the config with a modified export size.
func (c Config) WithChartSize(width, height int) Config {
	c.ChartWidth = width
	c.ChartHeight = height
	return c
}

// WithChartThreshold returns a copy of the config with a modified warning threshold.
func (c Config) WithChartThreshold(t float64) Config {
	c.ChartThreshold = t
	return c
}

// Validate checks if the configuration is valid. All problems are reported together.
func (c Config) Validate() error {
	var merr *multierror.Error
	if c.AnalysisDelay < 0 {
		merr = multierror.Append(merr, &ConfigError{Field: "AnalysisDelay", Message: "must not be negative"})
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		merr = multierror.Append(merr, &ConfigError{Field: "LogLevel", Message: "must be one of debug, info, warn, error"})
	}
	if c.ChartWidth <= 0 {
		merr = multierror.Append(merr, &ConfigError{Field: "ChartWidth", Message: "must be positive"})
	}
	if c.ChartHeight <= 0 {
		merr = multierror.Append(merr, &ConfigError{Field: "ChartHeight", Message: "must be positive"})
	}
	if c.ChartThreshold <= 0 {
		merr = multierror.Append(merr, &ConfigError{Field: "ChartThreshold", Message: "must be positive"})
	}
	if c.WordWrap <= 0 {
		merr = multierror.Append(merr, &ConfigError{Field: "WordWrap", Message: "must be positive"})
	}
	return merr.ErrorOrNil()
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
