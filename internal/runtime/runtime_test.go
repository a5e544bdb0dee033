package runtime

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/fastpilot/internal/config"
	fperrors "github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/output"
)

// =============================================================================
// Context Tests
// =============================================================================

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.NotEmpty(t, opts.DBPath)
	assert.False(t, opts.InMemory)
	assert.Equal(t, output.FormatCLI, opts.Format)
	assert.Equal(t, output.ColorAuto, opts.ColorMode)
	assert.False(t, opts.Debug)
}

func TestNew(t *testing.T) {
	ctx, err := New(Options{InMemory: true})
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.Gateway)
	assert.NotNil(t, ctx.Catalog)
	assert.NotNil(t, ctx.Tracker)
	assert.NotNil(t, ctx.Ticker)
	assert.NotNil(t, ctx.Formatter)
	assert.Equal(t, config.DefaultPrefs(), ctx.Prefs)
	assert.Equal(t, "fastpilot:fasts", ctx.DB.Key("fasts"))
}

func TestNewWithOptions(t *testing.T) {
	prefs := config.Prefs{Format: "json", Color: "never", Period: "month"}
	ctx, err := New(Options{
		InMemory:  true,
		Format:    output.FormatJSON,
		ColorMode: output.ColorNever,
		Debug:     true,
		Prefs:     &prefs,
	})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, output.FormatJSON, ctx.Formatter.Format)
	assert.Equal(t, output.ColorNever, ctx.Formatter.ColorMode)
	assert.True(t, ctx.Debug)
	assert.Equal(t, "month", ctx.Prefs.Period)
	assert.True(t, ctx.IsJSON())
	assert.False(t, ctx.IsCLI())
}

func TestNewWithEnvMemory(t *testing.T) {
	t.Setenv(EnvDatabase, ":memory:")

	ctx, err := New(Options{})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Empty(t, ctx.DB.Path())
}

func TestNewWithEnvPath(t *testing.T) {
	dbPath := t.TempDir() + "/fastpilot-test.db"
	t.Setenv(EnvDatabase, dbPath)

	ctx, err := New(Options{InMemory: false})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, dbPath, ctx.DB.Path())
}

func TestContextClose(t *testing.T) {
	ctx, err := New(Options{InMemory: true})
	require.NoError(t, err)

	ctx.Ticker.Start(t.Context(), func(time.Time) {})
	assert.NoError(t, ctx.Close())
	assert.False(t, ctx.Ticker.Running())

	nilCtx := &Context{}
	assert.NoError(t, nilCtx.Close())
}

func TestContextClock(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	ctx := &Context{Now: func() time.Time { return fixed }}
	assert.Equal(t, fixed, ctx.Clock())

	ctx.Now = nil
	assert.WithinDuration(t, time.Now(), ctx.Clock(), time.Second)
}

func TestContextFormatters(t *testing.T) {
	ctx, err := New(Options{InMemory: true})
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.CLIFormatter())
	assert.NotNil(t, ctx.JSONFormatter())
}

// =============================================================================
// Disk Full Tests
// =============================================================================

func TestIsDiskFullError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", ErrDiskFull, true},
		{"errno", fmt.Errorf("write: %w", syscall.ENOSPC), true},
		{"message", errors.New("sync: no space left on device"), true},
		{"other", errors.New("permission denied"), false},
		{"wrapped_type", NewDiskFullError("end", "/tmp/db", syscall.ENOSPC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDiskFullError(tt.err))
		})
	}
}

func TestWrapDiskFullError(t *testing.T) {
	assert.Nil(t, WrapDiskFullError(nil, "end", ""))

	plain := errors.New("boom")
	assert.Equal(t, plain, WrapDiskFullError(plain, "end", ""))

	wrapped := WrapDiskFullError(syscall.ENOSPC, "end", "/data")
	var dfe *DiskFullError
	require.ErrorAs(t, wrapped, &dfe)
	assert.Equal(t, "end", dfe.Op)
	assert.Contains(t, wrapped.Error(), "disk full during end on /data")
	assert.ErrorIs(t, wrapped, syscall.ENOSPC)
	assert.Equal(t, fperrors.CategorySystem, fperrors.Classify(wrapped))
	assert.Contains(t, fperrors.GetSuggestion(wrapped), "Free up disk space")
}

func TestContextCheck(t *testing.T) {
	ctx := &Context{}
	assert.NoError(t, ctx.Check(nil, "start"))
	assert.True(t, IsDiskFullError(ctx.Check(syscall.ENOSPC, "start")))
}
