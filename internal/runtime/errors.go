package runtime

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	fperrors "github.com/manav03panchal/fastpilot/internal/errors"
)

// ErrDiskFull reports that the store could not be written for lack of space.
var ErrDiskFull = errors.New("disk full: unable to write to database")

func init() {
	fperrors.Suggestions[ErrDiskFull] = "Free up disk space and try again. Your fast history is unchanged."
}

// DiskFullError represents a disk full condition with additional context.
type DiskFullError struct {
	Op      string // The operation that failed (e.g., "open", "end")
	Path    string // The path involved, if known
	wrapped error
}

func (e *DiskFullError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("disk full during %s on %s: %v", e.Op, e.Path, e.wrapped)
	}
	return fmt.Sprintf("disk full during %s: %v", e.Op, e.wrapped)
}

func (e *DiskFullError) Unwrap() []error {
	return []error{ErrDiskFull, e.wrapped}
}

// NewDiskFullError creates a new DiskFullError.
func NewDiskFullError(op, path string, err error) *DiskFullError {
	return &DiskFullError{
		Op:      op,
		Path:    path,
		wrapped: err,
	}
}

// IsDiskFullError checks if an error indicates a disk full condition.
func IsDiskFullError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDiskFull) {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ENOSPC {
		return true
	}

	// Badger sometimes flattens the errno into its message
	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{"no space left on device", "disk full", "enospc"} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// WrapDiskFullError wraps an error as a DiskFullError if it indicates disk full.
// Other errors are returned unchanged.
func WrapDiskFullError(err error, op, path string) error {
	if err == nil {
		return nil
	}
	if IsDiskFullError(err) {
		return NewDiskFullError(op, path, err)
	}
	return err
}

// Check wraps err for op using the context's database path.
func (c *Context) Check(err error, op string) error {
	path := ""
	if c.DB != nil {
		path = c.DB.Path()
	}
	return WrapDiskFullError(err, op, path)
}
