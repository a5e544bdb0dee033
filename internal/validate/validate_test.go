package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/model"
)

// =============================================================================
// Settings Validation Tests
// =============================================================================

func TestClockTime(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"20:00", true},
		{"00:00", true},
		{"23:59", true},
		{"08:30", true},
		{"24:00", false},
		{"8:30", false},
		{"20:60", false},
		{"2000", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ClockTime(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errors.ErrInvalidSettings)
			}
		})
	}
}

func TestWeeklyGoal(t *testing.T) {
	for goal := 0; goal <= 7; goal++ {
		assert.NoError(t, WeeklyGoal(goal))
	}
	assert.Error(t, WeeklyGoal(-1))
	assert.Error(t, WeeklyGoal(8))
}

func TestHours(t *testing.T) {
	assert.NoError(t, FastHours(16))
	assert.NoError(t, FastHours(168))
	assert.Error(t, FastHours(0))
	assert.Error(t, FastHours(-2))
	assert.Error(t, FastHours(200))

	assert.NoError(t, EatHours(0))
	assert.NoError(t, EatHours(8))
	assert.Error(t, EatHours(-1))
}

func TestMethodID(t *testing.T) {
	cat := catalog.New()
	assert.NoError(t, MethodID(cat, "16-8"))
	assert.NoError(t, MethodID(cat, "custom"))

	err := MethodID(cat, "25-0")
	assert.ErrorIs(t, err, errors.ErrInvalidMethod)
	assert.True(t, errors.IsUserError(err))
}

func TestSettings(t *testing.T) {
	cat := catalog.New()
	assert.NoError(t, Settings(cat, model.DefaultSettings()))

	s := model.DefaultSettings()
	s.WeeklyGoal = 9
	assert.ErrorIs(t, Settings(cat, s), errors.ErrInvalidSettings)

	s = model.DefaultSettings()
	s.StartTime = "late"
	assert.ErrorIs(t, Settings(cat, s), errors.ErrInvalidSettings)

	s = model.DefaultSettings()
	s.MethodID = "nope"
	assert.ErrorIs(t, Settings(cat, s), errors.ErrInvalidMethod)
}

func TestNote(t *testing.T) {
	assert.NoError(t, Note(""))
	assert.NoError(t, Note(strings.Repeat("a", MaxNoteLength)))
	assert.Error(t, Note(strings.Repeat("a", MaxNoteLength+1)))
}

func TestFastID(t *testing.T) {
	assert.NoError(t, FastID("0190a2b3"))
	assert.Error(t, FastID("   "))
}

func TestNonEmpty(t *testing.T) {
	assert.NoError(t, NonEmpty("file", "x"))
	assert.Error(t, NonEmpty("file", ""))
}

// =============================================================================
// Sanitize Tests
// =============================================================================

func TestSanitizeNote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims", "  hello  ", "hello"},
		{"null_bytes", "a\x00b", "ab"},
		{"crlf", "a\r\nb", "a\nb"},
		{"cr", "a\rb", "a\nb"},
		{"control", "a\x07b\tc", "ab\tc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeNote(tt.input))
		})
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "hello", TruncateString("hello", 10))
	assert.Equal(t, "hel...", TruncateString("hello world", 6))
	assert.Equal(t, "he", TruncateString("hello", 2))
	assert.Equal(t, "日本...", TruncateString("日本語テキスト", 5))
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "fastpilot-2024-01-01T20_00", SafeFilename("fastpilot-2024-01-01T20:00"))
	assert.Equal(t, "a_b", SafeFilename(" a/b. "))
	assert.Len(t, SafeFilename(strings.Repeat("x", 300)), 200)
}
