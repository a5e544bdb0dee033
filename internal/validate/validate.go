// Package validate provides input validation helpers for the FastPilot CLI.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/model"
)

const (
	// MaxNoteLength is the maximum length for a note.
	MaxNoteLength = 1000
	// MaxHours bounds any configured fasting or eating window.
	MaxHours = 168
)

// clockRegex matches a 24-hour "HH:MM" clock time.
var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Note validates a note.
func Note(note string) error {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return errors.NewUserError(
			"Note too long",
			fmt.Sprintf("Notes must be %d characters or fewer", MaxNoteLength))
	}
	return nil
}

// ClockTime validates a "HH:MM" time of day.
func ClockTime(s string) error {
	if !clockRegex.MatchString(s) {
		return &errors.UserError{
			Message:    "Invalid start time",
			Suggestion: "Use 24-hour HH:MM format, e.g. 20:00",
			Field:      "startTime",
			Value:      s,
			Err:        errors.ErrInvalidSettings,
		}
	}
	return nil
}

// WeeklyGoal validates a weekly goal in days.
func WeeklyGoal(goal int) error {
	if goal < 0 || goal > model.MaxWeeklyGoal {
		return &errors.UserError{
			Message:    "Weekly goal out of range",
			Suggestion: fmt.Sprintf("Must be between 0 and %d days", model.MaxWeeklyGoal),
			Field:      "weeklyGoal",
			Value:      fmt.Sprint(goal),
			Err:        errors.ErrInvalidSettings,
		}
	}
	return nil
}

// FastHours validates a custom fasting window.
func FastHours(h float64) error {
	if h <= 0 || h > MaxHours {
		return &errors.UserError{
			Message:    "Fasting hours out of range",
			Suggestion: fmt.Sprintf("Must be more than 0 and at most %d hours", MaxHours),
			Field:      "customFastHours",
			Value:      fmt.Sprint(h),
			Err:        errors.ErrInvalidSettings,
		}
	}
	return nil
}

// EatHours validates a custom eating window.
func EatHours(h float64) error {
	if h < 0 || h > MaxHours {
		return &errors.UserError{
			Message:    "Eating hours out of range",
			Suggestion: fmt.Sprintf("Must be between 0 and %d hours", MaxHours),
			Field:      "customEatHours",
			Value:      fmt.Sprint(h),
			Err:        errors.ErrInvalidSettings,
		}
	}
	return nil
}

// MethodID validates that id names a catalog method.
func MethodID(cat *catalog.Catalog, id string) error {
	if !cat.Has(id) {
		return &errors.UserError{
			Message:    "Unknown fasting method",
			Suggestion: "Run 'fastpilot methods' to list valid ids",
			Field:      "method",
			Value:      id,
			Err:        errors.ErrInvalidMethod,
		}
	}
	return nil
}

// Settings validates every field of s.
func Settings(cat *catalog.Catalog, s model.Settings) error {
	if err := MethodID(cat, s.MethodID); err != nil {
		return err
	}
	if err := ClockTime(s.StartTime); err != nil {
		return err
	}
	if err := WeeklyGoal(s.WeeklyGoal); err != nil {
		return err
	}
	if err := FastHours(s.CustomFastHours); err != nil {
		return err
	}
	return EatHours(s.CustomEatHours)
}

// FastID validates a record id argument.
func FastID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewUserError("Fast ID cannot be empty", "Run 'fastpilot history' to find ids")
	}
	return nil
}

// NonEmpty validates that a string is not empty.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	return nil
}
