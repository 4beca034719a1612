package pathkit

import (
	"errors"
	"fmt"
)

// Common path and filesystem errors
var (
	ErrInvalidPath = errors.New("invalid path")
	ErrNotExist    = errors.New("path does not exist")
	ErrExist       = errors.New("path already exists")
	ErrPermission  = errors.New("permission denied")
	ErrClosed      = errors.New("file already closed")
	ErrNotDir      = errors.New("not a directory")
	ErrIsDir       = errors.New("is a directory")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsInvalidPath reports whether an error indicates that a string or
// segment cannot be represented as a path on this platform
func IsInvalidPath(err error) bool {
	return errors.Is(err, ErrInvalidPath)
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsNotDir reports whether an error indicates that a path exists but is
// not a directory
func IsNotDir(err error) bool {
	return errors.Is(err, ErrNotDir)
}

// IsIsDir reports whether an error indicates that a path unexpectedly
// refers to a directory
func IsIsDir(err error) bool {
	return errors.Is(err, ErrIsDir)
}

// IsPermission reports whether an error indicates that permission is denied
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}
