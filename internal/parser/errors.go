package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/fastpilot/internal/errors"
)

// TimeParseError represents a parsing error with helpful suggestions.
type TimeParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap lets timestamp errors match errors.ErrInvalidTimestamp.
func (e *TimeParseError) Unwrap() error {
	if e.Field == "timestamp" {
		return errors.ErrInvalidTimestamp
	}
	return nil
}

// FormatWithExamples returns the error message with example suggestions.
func (e *TimeParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// DurationExamples provides example duration formats.
var DurationExamples = []string{
	"16",
	"16h",
	"18.5h",
	"16h30m",
	"90 minutes",
}

// TimestampExamples provides example timestamp formats.
var TimestampExamples = []string{
	"now",
	"-2h",
	"8pm",
	"yesterday 20:00",
	"3 hours ago",
	"2024-01-15 20:00",
}

// MonthExamples provides example month formats.
var MonthExamples = []string{
	"2024-01",
	"January 2024",
	"Jan 2024",
}

// NewDurationError creates a duration parse error with standard examples.
func NewDurationError(input string) *TimeParseError {
	return &TimeParseError{
		Input:      input,
		Field:      "duration",
		Message:    "could not parse duration",
		Examples:   DurationExamples,
		Suggestion: "Durations are hours (h) or minutes (m); a bare number means hours.",
	}
}

// NewHoursError creates an hour-count parse error.
func NewHoursError(input string) *TimeParseError {
	return &TimeParseError{
		Input:      input,
		Field:      "hours",
		Message:    "expected a positive number of hours",
		Examples:   DurationExamples,
		Suggestion: "Try a value like '18' or '18h30m'.",
	}
}

// NewTimestampError creates a timestamp parse error with standard examples.
func NewTimestampError(input string) *TimeParseError {
	return &TimeParseError{
		Input:      input,
		Field:      "timestamp",
		Message:    "could not parse time",
		Examples:   TimestampExamples,
		Suggestion: "Try natural language like '8pm', '2 hours ago', or 'yesterday 20:00'.",
	}
}

// NewMonthError creates a month parse error.
func NewMonthError(input string) *TimeParseError {
	return &TimeParseError{
		Input:      input,
		Field:      "month",
		Message:    "could not parse month",
		Examples:   MonthExamples,
		Suggestion: "Use the YYYY-MM form, e.g. 2024-01.",
	}
}

// ToUserError converts a TimeParseError to a UserError for consistent handling.
func (e *TimeParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	ue := errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion)
	ue.Err = e.Unwrap()
	return ue
}

// AsUserError converts parse errors to user errors and passes others through.
func AsUserError(err error) error {
	var pe *TimeParseError
	if errors.As(err, &pe) {
		return pe.ToUserError()
	}
	return err
}
