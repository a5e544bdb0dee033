package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrefsMissingFile(t *testing.T) {
	prefs := LoadPrefs(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, DefaultPrefs(), prefs)
}

func TestLoadPrefsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = [unterminated"), 0o644))

	assert.Equal(t, DefaultPrefs(), LoadPrefs(path))
}

func TestLoadPrefsPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"json\"\n"), 0o644))

	prefs := LoadPrefs(path)
	assert.Equal(t, "json", prefs.Format)
	assert.Equal(t, "auto", prefs.Color)
	assert.Equal(t, DefaultPrefs().Period, prefs.Period)
}

func TestSaveLoadPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Prefs{Format: "plain", Color: "never", Period: "month"}

	require.NoError(t, SavePrefs(path, want))
	assert.Equal(t, want, LoadPrefs(path))
}

func TestDefaultPrefsPathOverride(t *testing.T) {
	t.Setenv("FASTPILOT_CONFIG", "/tmp/fp.toml")
	assert.Equal(t, "/tmp/fp.toml", DefaultPrefsPath())
}

func TestDefaultPrefsPath(t *testing.T) {
	t.Setenv("FASTPILOT_CONFIG", "")
	path := DefaultPrefsPath()
	assert.Contains(t, path, "fastpilot")
	assert.Equal(t, "config.toml", filepath.Base(path))
}
