package pathkit

import (
	"context"
	"os"
)

const (
	defaultDirMode  os.FileMode = 0755
	defaultFileMode os.FileMode = 0644
)

// CreateDir creates the leaf directory named by fn. The parent directory
// must already exist; see [CreateDirAll] for the recursive variant.
//
// CreateDir is idempotent: if the path already exists as a directory it
// returns created=false with no error. If the path exists as a
// non-directory the call fails with a *PathError wrapping [ErrNotDir].
func CreateDir(ctx context.Context, fn Filename) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
		// Continue
	}

	mode, err := configuredDirMode()
	if err != nil {
		return false, &PathError{
			Op:   "createdir",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	err = os.Mkdir(fn.Native(), mode)
	if err == nil {
		return true, nil
	}
	if os.IsExist(err) {
		return false, alreadyExistsAsDir(fn, "createdir")
	}

	return false, &PathError{
		Op:   "createdir",
		Path: fn.Portable(),
		Err:  err,
	}
}

// CreateDirAll creates the directory named by fn along with any missing
// parents. The created flag reports whether the leaf directory was newly
// created; like [CreateDir], an existing directory is success.
func CreateDirAll(ctx context.Context, fn Filename) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
		// Continue
	}

	info, err := os.Stat(fn.Native())
	if err == nil {
		if info.IsDir() {
			return false, nil
		}
		return false, &PathError{
			Op:   "createdir",
			Path: fn.Portable(),
			Err:  ErrNotDir,
		}
	}
	if !os.IsNotExist(err) {
		return false, &PathError{
			Op:   "createdir",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	mode, err := configuredDirMode()
	if err != nil {
		return false, &PathError{
			Op:   "createdir",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	if err := os.MkdirAll(fn.Native(), mode); err != nil {
		if os.IsExist(err) {
			// Lost a race against a concurrent creator
			return false, alreadyExistsAsDir(fn, "createdir")
		}
		return false, &PathError{
			Op:   "createdir",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	return true, nil
}

// alreadyExistsAsDir resolves an os.IsExist outcome: an existing
// directory is idempotent success, anything else is a hard error.
func alreadyExistsAsDir(fn Filename, op string) error {
	info, err := os.Stat(fn.Native())
	if err != nil {
		return &PathError{
			Op:   op,
			Path: fn.Portable(),
			Err:  err,
		}
	}
	if !info.IsDir() {
		return &PathError{
			Op:   op,
			Path: fn.Portable(),
			Err:  ErrNotDir,
		}
	}
	return nil
}

// DeleteDirTree recursively removes the directory named by fn and
// everything beneath it, children before parents.
//
// A missing path is an idempotent no-op: deleted=false, no error. A
// failure partway through leaves a partially deleted tree; the operation
// is not transactional, but re-invoking it converges toward full
// removal. The walk is not atomic with respect to concurrent mutation of
// the tree by other actors.
func DeleteDirTree(ctx context.Context, fn Filename) (bool, error) {
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
			Op:   "deletedirtree",
			Path: fn.Portable(),
			Err:  err,
		}
	}
	if !info.IsDir() {
		return false, &PathError{
			Op:   "deletedirtree",
			Path: fn.Portable(),
			Err:  ErrNotDir,
		}
	}

	if err := deleteDirContents(ctx, fn); err != nil {
		return false, err
	}

	if err := os.Remove(fn.Native()); err != nil {
		return false, &PathError{
			Op:   "deletedirtree",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	return true, nil
}

// deleteDirContents removes every entry below fn, depth-first
func deleteDirContents(ctx context.Context, fn Filename) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Continue
	}

	entries, err := os.ReadDir(fn.Native())
	if err != nil {
		return &PathError{
			Op:   "deletedirtree",
			Path: fn.Portable(),
			Err:  err,
		}
	}

	for _, entry := range entries {
		child, err := fn.Join(entry.Name())
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if err := deleteDirContents(ctx, child); err != nil {
				return err
			}
		}

		if err := os.Remove(child.Native()); err != nil {
			return &PathError{
				Op:   "deletedirtree",
				Path: child.Portable(),
				Err:  err,
			}
		}
	}

	return nil
}
