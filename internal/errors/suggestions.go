package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// Lifecycle errors
	ErrAlreadyActive:  "End the current fast with 'fastpilot end' or discard it with 'fastpilot cancel'.",
	ErrNoActiveFast:   "Start a fast with 'fastpilot start'.",
	ErrEndBeforeStart: "Check your timestamps - the end must come after the start.",
	ErrFutureStart:    "Use a start time in the past, like '2 hours ago' or '8pm yesterday'.",
	ErrFastNotFound:   "Use 'fastpilot history' to see fast ids.",
	ErrMethodLocked:   "End or cancel the active fast before switching methods.",
	ErrAmbiguousID:    "Use more characters of the id, or the full id from 'fastpilot history --format json'.",

	// Input errors
	ErrInvalidTimestamp: "Try formats like '2 hours ago', 'yesterday at 8pm', '20:00', or '2025-03-01 20:00'.",
	ErrInvalidMethod:    "Use 'fastpilot methods' to list available methods.",
	ErrInvalidSettings:  "Weekly goal must be 0-7, start time HH:MM, and custom hours greater than zero.",
	ErrInvalidPeriod:    "Use one of: week, month, quarter, year, all.",
	ErrInvalidImport:    "Import a file produced by 'fastpilot export'.",

	// System errors
	ErrDatabaseCorrupted: "Run 'fastpilot doctor --repair' to reset unreadable data.",
	ErrPermissionDenied:  "Check file permissions in your data directory (~/.local/share/fastpilot/).",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// An explicit suggestion wins over the sentinel's
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// GetCategorySuggestion returns a generic suggestion based on error category.
func GetCategorySuggestion(err error) string {
	switch Classify(err) {
	case CategoryUser:
		return "Check your input and try again. Use --help for usage information."
	case CategorySystem:
		return "This is a system error. Run 'fastpilot doctor' to check your data."
	}
	return ""
}

// CommandExamples provides example commands for common errors.
var CommandExamples = map[error][]string{
	ErrNoActiveFast: {
		"fastpilot start",
		"fastpilot start --method 18-6",
		"fastpilot start --at '2 hours ago'",
	},
	ErrInvalidTimestamp: {
		"fastpilot start --at '8pm yesterday'",
		"fastpilot log --start 'yesterday 20:00' --end 'today 12:00'",
		"fastpilot edit <id> --end '1 hour ago'",
	},
	ErrInvalidPeriod: {
		"fastpilot stats week",
		"fastpilot stats all",
	},
}

// GetExamples returns example commands for an error.
func GetExamples(err error) []string {
	for knownErr, examples := range CommandExamples {
		if errors.Is(err, knownErr) {
			return examples
		}
	}
	return nil
}
