package config

import (
	"testing"
	"time"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if cfg.Timer.RefreshInterval != time.Second {
		t.Errorf("expected Timer.RefreshInterval = 1s, got %v", cfg.Timer.RefreshInterval)
	}
	if cfg.Storage.KeyPrefix != "fastpilot" {
		t.Errorf("expected Storage.KeyPrefix = fastpilot, got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Metrics.StreakCapDays != 30 {
		t.Errorf("expected Metrics.StreakCapDays = 30, got %d", cfg.Metrics.StreakCapDays)
	}
	if cfg.Metrics.DefaultPeriod != "week" {
		t.Errorf("expected Metrics.DefaultPeriod = week, got %q", cfg.Metrics.DefaultPeriod)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected Logging.Level = error, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FASTPILOT_REFRESH_INTERVAL", "250ms")
	t.Setenv("FASTPILOT_KEY_PREFIX", "fp-test")
	t.Setenv("FASTPILOT_STREAK_CAP_DAYS", "14")
	t.Setenv("FASTPILOT_DEFAULT_PERIOD", "month")
	t.Setenv("FASTPILOT_LOG_LEVEL", "debug")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	if cfg.Timer.RefreshInterval != 250*time.Millisecond {
		t.Errorf("expected RefreshInterval = 250ms, got %v", cfg.Timer.RefreshInterval)
	}
	if cfg.Storage.KeyPrefix != "fp-test" {
		t.Errorf("expected KeyPrefix = fp-test, got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Metrics.StreakCapDays != 14 {
		t.Errorf("expected StreakCapDays = 14, got %d", cfg.Metrics.StreakCapDays)
	}
	if cfg.Metrics.DefaultPeriod != "month" {
		t.Errorf("expected DefaultPeriod = month, got %q", cfg.Metrics.DefaultPeriod)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Logging.Level = debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromEnvInvalidValues(t *testing.T) {
	t.Setenv("FASTPILOT_REFRESH_INTERVAL", "soon")
	t.Setenv("FASTPILOT_STREAK_CAP_DAYS", "-3")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	if cfg.Timer.RefreshInterval != time.Second {
		t.Errorf("invalid interval should keep default, got %v", cfg.Timer.RefreshInterval)
	}
	if cfg.Metrics.StreakCapDays != 30 {
		t.Errorf("negative cap should keep default, got %d", cfg.Metrics.StreakCapDays)
	}
}

func TestReset(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Timer.RefreshInterval = time.Hour
	cfg.Storage.KeyPrefix = "other"

	cfg.Reset()

	if cfg.Timer.RefreshInterval != time.Second {
		t.Errorf("expected reset RefreshInterval = 1s, got %v", cfg.Timer.RefreshInterval)
	}
	if cfg.Storage.KeyPrefix != "fastpilot" {
		t.Errorf("expected reset KeyPrefix = fastpilot, got %q", cfg.Storage.KeyPrefix)
	}
}
