package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds display preferences read from config.toml.
// Command-line flags take precedence over these values.
type Prefs struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
	Period string `toml:"period"`
}

const (
	defaultFormat = "cli"
	defaultColor  = "auto"
)

// DefaultPrefs returns the built-in preferences.
func DefaultPrefs() Prefs {
	return Prefs{
		Format: defaultFormat,
		Color:  defaultColor,
		Period: Global.Metrics.DefaultPeriod,
	}
}

// DefaultPrefsPath returns the preferences file path. FASTPILOT_CONFIG overrides it.
func DefaultPrefsPath() string {
	if v := os.Getenv("FASTPILOT_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, "fastpilot", "config.toml")
}

// LoadPrefs reads preferences from path, falling back to defaults when the
// file is missing or unreadable. Empty fields take their default.
func LoadPrefs(path string) Prefs {
	prefs := DefaultPrefs()

	resolved, err := expandPath(path)
	if err != nil {
		return prefs
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return prefs
	}

	var loaded Prefs
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return prefs
	}

	if v := strings.TrimSpace(loaded.Format); v != "" {
		prefs.Format = v
	}
	if v := strings.TrimSpace(loaded.Color); v != "" {
		prefs.Color = v
	}
	if v := strings.TrimSpace(loaded.Period); v != "" {
		prefs.Period = v
	}
	return prefs
}

// SavePrefs writes preferences to path, creating directories as needed.
func SavePrefs(path string, p Prefs) error {
	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = DefaultPrefsPath()
	}
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
