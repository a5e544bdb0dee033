package errors

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// UserError Tests
// =============================================================================

func TestNewUserError(t *testing.T) {
	err := NewUserError("invalid input", "try again")
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "try again", err.Suggestion)
}

func TestUserErrorError(t *testing.T) {
	t.Run("without_field", func(t *testing.T) {
		err := NewUserError("invalid input", "")
		assert.Equal(t, "invalid input", err.Error())
	})

	t.Run("with_field", func(t *testing.T) {
		err := NewUserErrorWithField("weekly-goal", "9", "weekly goal out of range", "")
		assert.Equal(t, "weekly goal out of range: '9'", err.Error())
	})
}

func TestUserErrorUnwrapsSentinel(t *testing.T) {
	err := &UserError{Message: "bad time", Err: ErrInvalidTimestamp}
	assert.True(t, errors.Is(err, ErrInvalidTimestamp))
	assert.True(t, IsUserError(fmt.Errorf("context: %w", err)))
	assert.False(t, IsUserError(errors.New("plain")))
	assert.False(t, IsUserError(nil))
}

// =============================================================================
// SystemError Tests
// =============================================================================

func TestSystemError(t *testing.T) {
	cause := errors.New("disk on fire")

	t.Run("without_op", func(t *testing.T) {
		err := NewSystemError("write failed", cause)
		assert.Equal(t, "write failed", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("with_op", func(t *testing.T) {
		err := NewSystemErrorWithOp("import", "write failed", cause)
		assert.Equal(t, "write failed during import", err.Error())
	})

	t.Run("as", func(t *testing.T) {
		se, ok := AsSystemError(fmt.Errorf("outer: %w", NewSystemError("x", cause)))
		assert.True(t, ok)
		assert.Equal(t, "x", se.Message)
	})
}

// =============================================================================
// Wrap Tests
// =============================================================================

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ctx"))
	assert.Nil(t, Wrapf(nil, "ctx %d", 1))

	err := Wrap(ErrNoActiveFast, "ending fast")
	assert.Equal(t, "ending fast: no active fast", err.Error())
	assert.True(t, Is(err, ErrNoActiveFast))

	err = Wrapf(ErrFastNotFound, "fast %s", "abc")
	assert.Equal(t, "fast abc: fast not found", err.Error())
}

// =============================================================================
// Suggestion & Classification Tests
// =============================================================================

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"sentinel", ErrAlreadyActive, Suggestions[ErrAlreadyActive]},
		{"wrapped sentinel", Wrap(ErrNoActiveFast, "end"), Suggestions[ErrNoActiveFast]},
		{"user error", NewUserError("x", "do y"), "do y"},
		{"user error beats sentinel", &UserError{Message: "x", Suggestion: "custom", Err: ErrFutureStart}, "custom"},
		{"unknown", errors.New("mystery"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSuggestion(tt.err))
		})
	}
}

func TestEverySentinelHasSuggestion(t *testing.T) {
	for _, sentinel := range userSentinels {
		assert.NotEmpty(t, Suggestions[sentinel], sentinel.Error())
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, CategoryUnknown},
		{"user error", NewUserError("x", ""), CategoryUser},
		{"lifecycle sentinel", ErrAlreadyActive, CategoryUser},
		{"wrapped sentinel", Wrap(ErrEndBeforeStart, "log"), CategoryUser},
		{"system error", NewSystemError("x", nil), CategorySystem},
		{"corruption", ErrDatabaseCorrupted, CategorySystem},
		{"errno", fmt.Errorf("write: %w", syscall.ENOSPC), CategorySystem},
		{"plain", errors.New("plain"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "user", CategoryUser.String())
	assert.Equal(t, "system", CategorySystem.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
}

func TestFormatByCategory(t *testing.T) {
	assert.Equal(t, "", FormatByCategory(nil))
	assert.Contains(t, FormatByCategory(ErrNoActiveFast), "Try: Start a fast")
	assert.Contains(t, FormatByCategory(ErrDatabaseCorrupted), "System error: database corrupted")
	assert.Equal(t, "plain", FormatByCategory(errors.New("plain")))
}

func TestGetExamples(t *testing.T) {
	assert.NotEmpty(t, GetExamples(ErrNoActiveFast))
	assert.Nil(t, GetExamples(errors.New("x")))
	assert.NotEmpty(t, GetCategorySuggestion(ErrAlreadyActive))
}
