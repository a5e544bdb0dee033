package errors

import (
	"errors"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix.
	CategoryUser
	// CategorySystem indicates a storage or environment failure.
	CategorySystem
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// userSentinels are precondition and input failures.
var userSentinels = []error{
	ErrAlreadyActive,
	ErrNoActiveFast,
	ErrEndBeforeStart,
	ErrFutureStart,
	ErrFastNotFound,
	ErrAmbiguousID,
	ErrMethodLocked,
	ErrInvalidTimestamp,
	ErrInvalidMethod,
	ErrInvalidSettings,
	ErrInvalidPeriod,
	ErrInvalidImport,
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) {
		return CategorySystem
	}

	for _, sentinel := range userSentinels {
		if errors.Is(err, sentinel) {
			return CategoryUser
		}
	}

	if isSystemLevel(err) {
		return CategorySystem
	}

	return CategoryUnknown
}

func isSystemLevel(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.ENOENT, syscall.EIO, syscall.EROFS:
			return true
		}
	}

	return errors.Is(err, ErrDatabaseCorrupted) || errors.Is(err, ErrPermissionDenied)
}

// FormatByCategory returns a user-appropriate error message based on category.
func FormatByCategory(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	suggestion := GetSuggestion(err)

	switch Classify(err) {
	case CategoryUser:
		if suggestion != "" {
			return msg + "\n\nTry: " + suggestion
		}
		return msg
	case CategorySystem:
		if suggestion != "" {
			return "System error: " + msg + "\n\n" + suggestion
		}
		return "System error: " + msg
	default:
		return msg
	}
}
