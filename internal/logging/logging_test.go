package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the global logger into a buffer for the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	var buf bytes.Buffer
	Init(Config{Level: level, JSON: true, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelError, cfg.Level)
	assert.False(t, cfg.JSON)
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.AddSource)
}

func TestInitSetsDebug(t *testing.T) {
	captureLogs(t, slog.LevelDebug)
	assert.True(t, Debug)

	Init(Config{Level: slog.LevelWarn, Output: &bytes.Buffer{}})
	assert.False(t, Debug)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelError},
		{"", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in, slog.LevelError))
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	DebugLog("hidden")
	Info("hidden too")
	Warn("shown", KeyFastID, "abc")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"fast_id":"abc"`)
}

func TestLogOperation(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	LogOperation("end_fast", KeyStatus, "completed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "end_fast", entry[KeyOperation])
	assert.Equal(t, "completed", entry[KeyStatus])
}

func TestRequestID(t *testing.T) {
	id := GenerateRequestID()
	assert.Len(t, id, 8)
	assert.NotEqual(t, id, GenerateRequestID())

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	assert.Equal(t, "", RequestIDFromContext(nil)) //nolint:staticcheck

	assert.NotEmpty(t, RequestIDFromContext(NewRequestContext()))
}

func TestContextLogger(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	cl := FromContext(WithRequestID(context.Background(), "req-42")).With(KeyMethod, "16-8")
	assert.Equal(t, "req-42", cl.RequestID())

	cl.Debug("starting")
	cl.Info("started")
	cl.Warn("careful")
	cl.Error("failed")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"method":"16-8"`)
	assert.Contains(t, out, "failed")
}

func TestFromNilContext(t *testing.T) {
	cl := FromContext(nil) //nolint:staticcheck
	assert.Equal(t, "", cl.RequestID())
}
