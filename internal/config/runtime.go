// Package config provides centralized configuration for FastPilot runtime values
// and the user preferences file.
package config

import (
	"os"
	"strconv"
	"time"
)

// RuntimeConfig holds tunables that can be overridden through the environment.
type RuntimeConfig struct {
	Timer   TimerConfig
	Storage StorageConfig
	Metrics MetricsConfig
	Logging LoggingConfig
}

// TimerConfig holds live display configuration.
type TimerConfig struct {
	// RefreshInterval is how often the active fast display is redrawn.
	// Default: 1s
	RefreshInterval time.Duration
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// KeyPrefix namespaces every stored key.
	// Default: "fastpilot"
	KeyPrefix string
}

// MetricsConfig holds analytics configuration.
type MetricsConfig struct {
	// StreakCapDays is the streak length that earns the full streak share of the score.
	// Default: 30
	StreakCapDays int

	// DefaultPeriod is the analytics period used when none is given.
	// Default: "week"
	DefaultPeriod string
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum level written outside debug mode.
	// Default: "error"
	Level string
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Timer: TimerConfig{
			RefreshInterval: time.Second,
		},
		Storage: StorageConfig{
			KeyPrefix: "fastpilot",
		},
		Metrics: MetricsConfig{
			StreakCapDays: 30,
			DefaultPeriod: "week",
		},
		Logging: LoggingConfig{
			Level: "error",
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv applies FASTPILOT_* overrides. Invalid values are ignored.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("FASTPILOT_REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Timer.RefreshInterval = d
		}
	}

	if v := os.Getenv("FASTPILOT_KEY_PREFIX"); v != "" {
		c.Storage.KeyPrefix = v
	}

	if v := os.Getenv("FASTPILOT_STREAK_CAP_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Metrics.StreakCapDays = n
		}
	}
	if v := os.Getenv("FASTPILOT_DEFAULT_PERIOD"); v != "" {
		c.Metrics.DefaultPeriod = v
	}

	if v := os.Getenv("FASTPILOT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// ReloadFromEnv reloads configuration from environment variables.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
func (c *RuntimeConfig) Reset() {
	*c = *DefaultRuntimeConfig()
}
