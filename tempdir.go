package pathkit

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// TempDir is a scoped temporary directory: a uniquely named directory
// created under the temp root on construction and removed, recursively
// and best-effort, by Cleanup. The TempDir is the sole owner of the
// created path until teardown.
//
// Typical usage:
//
//	dir, err := pathkit.NewTempDir(ctx, "mytool-")
//	if err != nil {
//	    return err
//	}
//	defer dir.Cleanup()
type TempDir struct {
	path Filename
	once sync.Once
}

// NewTempDir creates a fresh directory named prefix plus a unique suffix
// under the configured temp root (PATHKIT_TEMP_ROOT, defaulting to the
// platform temp directory). On a name collision the suffix is
// regenerated, up to PATHKIT_TEMP_RETRIES attempts.
//
// The path of the returned TempDir carries a trailing separator in both
// its portable and native forms, so child paths can be appended safely.
func NewTempDir(ctx context.Context, prefix string) (*TempDir, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}

	root, err := FilenameFromString(filepath.ToSlash(cfg.TempRootDir()))
	if err != nil {
		return nil, err
	}
	if _, err := CreateDirAll(ctx, root); err != nil {
		return nil, err
	}

	retries := cfg.TempRetries
	if retries <= 0 {
		retries = 16
	}

	for attempt := 0; attempt < retries; attempt++ {
		candidate, err := root.Join(prefix + uuid.NewString())
		if err != nil {
			return nil, err
		}

		created, err := CreateDir(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if !created {
			// Name collision, try another suffix
			continue
		}

		// Re-parse with a trailing separator so children can be
		// joined by plain concatenation.
		path, err := FilenameFromString(candidate.Portable() + "/")
		if err != nil {
			return nil, err
		}

		return &TempDir{path: path}, nil
	}

	return nil, &PathError{
		Op:   "tempdir",
		Path: prefix,
		Err:  ErrExist,
	}
}

// Path returns the filename of the created directory, always with a
// trailing separator
func (d *TempDir) Path() Filename {
	return d.path
}

// Join appends a child segment to the directory's path
func (d *TempDir) Join(segment string) (Filename, error) {
	return d.path.Join(segment)
}

// Cleanup recursively deletes the directory and everything inside it.
//
// Cleanup is best-effort: failures are suppressed, because teardown
// commonly runs during unwind of already-failing code and must not
// introduce a new failure there. Suppressed errors are reported through
// the logger installed with [SetLogger]. A second Cleanup is a no-op.
func (d *TempDir) Cleanup() {
	d.once.Do(func() {
		if _, err := DeleteDirTree(context.Background(), d.path); err != nil {
			logger().Debug().
				Err(err).
				Str("path", d.path.Portable()).
				Msg("temp dir cleanup failed")
		}
	})
}
