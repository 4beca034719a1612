package pathkit

import (
	"context"
	"os"
)

// OpenOption represents a configuration option for OpenForWrite
type OpenOption func(*OpenOptions)

// OpenOptions contains all possible options for opening a file for output
type OpenOptions struct {
	// ReadWrite opens the file for reading as well as writing.
	// The default is write-only.
	ReadWrite bool

	// Truncate truncates the file to zero length if it already exists
	Truncate bool

	// Append positions every write at the end of the file
	Append bool

	// Mode is the permission bits used when the file is created.
	// Zero means the configured default (see [Config.FileMode]).
	Mode os.FileMode
}

// WithReadWrite opens the file for reading as well as writing
func WithReadWrite() OpenOption {
	return func(o *OpenOptions) {
		o.ReadWrite = true
	}
}

// WithTruncate truncates the file on open if it already exists
func WithTruncate() OpenOption {
	return func(o *OpenOptions) {
		o.Truncate = true
	}
}

// WithAppend positions writes at the end of the file
func WithAppend() OpenOption {
	return func(o *OpenOptions) {
		o.Append = true
	}
}

// WithFileMode sets the permission bits used when the file is created
func WithFileMode(mode os.FileMode) OpenOption {
	return func(o *OpenOptions) {
		o.Mode = mode
	}
}

func processOpenOptions(options ...OpenOption) (OpenOptions, error) {
	opts := OpenOptions{}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.Mode == 0 {
		mode, err := configuredFileMode()
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}
	return opts, nil
}

// OpenForWrite opens the file named by fn for output, creating it if it
// does not exist. The default is write-only with no truncation; combine
// [WithTruncate], [WithAppend], [WithReadWrite] and [WithFileMode] as
// needed. Truncate and append are passed through to the OS as given;
// choosing a sensible combination is up to the caller.
//
// The returned descriptor is exclusively owned by the caller until its
// Close method is called. Closing twice is caller error.
//
// Opening fails with a *PathError if the path is a directory
// ([ErrIsDir]) or its parent is missing.
func OpenForWrite(ctx context.Context, fn Filename, options ...OpenOption) (*os.File, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		// Continue
	}

	opts, err := processOpenOptions(options...)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	info, err := os.Stat(fn.Native())
	if err == nil && info.IsDir() {
		return nil, &PathError{
			Op:   "open",
			Path: fn.Portable(),
			Err:  ErrIsDir,
		}
	}

	flags := os.O_CREATE
	if opts.ReadWrite {
		flags |= os.O_RDWR
	} else {
		flags |= os.O_WRONLY
	}
	if opts.Truncate {
		flags |= os.O_TRUNC
	}
	if opts.Append {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(fn.Native(), flags, opts.Mode)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	return f, nil
}

// DeleteFile removes the plain file named by fn.
//
// A missing path is an idempotent no-op: deleted=false, no error. A
// directory is never removed, silently or otherwise; the call fails with
// a *PathError wrapping [ErrIsDir]. Use [DeleteDirTree] for directories.
func DeleteFile(ctx context.Context, fn Filename) (bool, error) {
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
			Op:   "deletefile",
			Path: fn.Portable(),
			Err:  err,
		}
	}
	if info.IsDir() {
		return false, &PathError{
			Op:   "deletefile",
			Path: fn.Portable(),
			Err:  ErrIsDir,
		}
	}

	if err := os.Remove(fn.Native()); err != nil {
		if os.IsNotExist(err) {
			// Lost a race against a concurrent deleter
			return false, nil
		}
		return false, &PathError{
			Op:   "deletefile",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	return true, nil
}
