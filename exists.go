package pathkit

import (
	"context"
	"os"
)

// Exists reports whether the path resolves to any filesystem entry
// (file, directory, or other).
//
// A missing path is a valid false result, not an error. Errors are
// reserved for failures of the query itself, such as an unreadable
// parent directory.
func Exists(ctx context.Context, fn Filename) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
		// Continue
	}

	_, err := os.Stat(fn.Native())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &PathError{
			Op:   "exists",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	return true, nil
}

// FileExists reports whether the path resolves to a non-directory entry
func FileExists(ctx context.Context, fn Filename) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
		// Continue
	}

	info, err := os.Stat(fn.Native())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &PathError{
			Op:   "fileexists",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	// Return true only if it's a file (not a directory)
	return !info.IsDir(), nil
}

// DirExists reports whether the path resolves to a directory
func DirExists(ctx context.Context, fn Filename) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
		// Continue
	}

	info, err := os.Stat(fn.Native())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &PathError{
			Op:   "direxists",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	// Return true only if it's a directory
	return info.IsDir(), nil
}
