package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/fastpilot/internal/errors"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Duration Tests
// =============================================================================

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		valid    bool
	}{
		{"go_duration", "16h", 16 * time.Hour, true},
		{"go_duration_combined", "16h30m", 16*time.Hour + 30*time.Minute, true},
		{"number_only", "18", 18 * time.Hour, true},
		{"decimal_number", "18.5", 18*time.Hour + 30*time.Minute, true},
		{"hours_word", "36 hours", 36 * time.Hour, true},
		{"hrs", "20hrs", 20 * time.Hour, true},
		{"minutes_word", "90 minutes", 90 * time.Minute, true},
		{"spaced_combo", "1h 30m", 90 * time.Minute, true},
		{"empty", "", 0, false},
		{"whitespace", "   ", 0, false},
		{"garbage", "abc", 0, false},
		{"zero", "0", 0, false},
		{"negative_go", "-2h", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDuration(tt.input)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseHours(t *testing.T) {
	h, err := ParseHours("18h30m")
	require.NoError(t, err)
	assert.InDelta(t, 18.5, h, 1e-9)

	_, err = ParseHours("lots")
	var pe *TimeParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "hours", pe.Field)
}

// =============================================================================
// Timestamp Tests
// =============================================================================

func TestParseTimestamp(t *testing.T) {
	t.Run("empty_is_now", func(t *testing.T) {
		got, err := ParseTimestamp("", now)
		require.NoError(t, err)
		assert.Equal(t, now, got)
	})

	t.Run("now_case_insensitive", func(t *testing.T) {
		got, err := ParseTimestamp("  NOW ", now)
		require.NoError(t, err)
		assert.Equal(t, now, got)
	})

	t.Run("negative_offset", func(t *testing.T) {
		got, err := ParseTimestamp("-2h30m", now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(-150*time.Minute), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := ParseTimestamp("2024-03-14T20:00:00Z", now)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC)))
	})

	t.Run("date_and_clock", func(t *testing.T) {
		got, err := ParseTimestamp("2024-03-14 20:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC), got)
	})

	t.Run("hours_ago", func(t *testing.T) {
		got, err := ParseTimestamp("3 hours ago", now)
		require.NoError(t, err)
		assert.WithinDuration(t, now.Add(-3*time.Hour), got, time.Minute)
	})

	t.Run("bad_offset", func(t *testing.T) {
		_, err := ParseTimestamp("-soon", now)
		assert.ErrorIs(t, err, errors.ErrInvalidTimestamp)
	})
}

// =============================================================================
// Month Tests
// =============================================================================

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input string
		year  int
		month time.Month
		valid bool
	}{
		{"", 2024, time.March, true},
		{"2024-01", 2024, time.January, true},
		{"January 2023", 2023, time.January, true},
		{"Feb 2024", 2024, time.February, true},
		{"2024/12", 2024, time.December, true},
		{"2024-13", 0, 0, false},
		{"soon", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			y, m, err := ParseMonth(tt.input, now)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, y)
			assert.Equal(t, tt.month, m)
		})
	}
}

// =============================================================================
// Error Tests
// =============================================================================

func TestTimeParseErrorFormatting(t *testing.T) {
	err := NewTimestampError("blah")
	assert.Equal(t, "invalid timestamp 'blah': could not parse time", err.Error())

	formatted := err.FormatWithExamples()
	assert.Contains(t, formatted, "Valid examples:")
	assert.Contains(t, formatted, "  - 8pm")
}

func TestToUserError(t *testing.T) {
	ue := NewTimestampError("blah").ToUserError()
	assert.Equal(t, "timestamp", ue.Field)
	assert.Equal(t, "blah", ue.Value)
	assert.ErrorIs(t, ue, errors.ErrInvalidTimestamp)

	ue = NewMonthError("x").ToUserError()
	assert.NotErrorIs(t, ue, errors.ErrInvalidTimestamp)
	assert.Contains(t, ue.Suggestion, "YYYY-MM")
}

func TestAsUserError(t *testing.T) {
	err := AsUserError(NewDurationError("x"))
	assert.True(t, errors.IsUserError(err))

	plain := errors.ErrFastNotFound
	assert.Equal(t, plain, AsUserError(plain))
	assert.Nil(t, AsUserError(nil))
}
