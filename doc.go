// Package pathkit provides a cross-platform path representation and a small
// set of directory and file lifecycle primitives built on top of it.
//
// The core type is [Filename], which holds a path in both a portable form
// (UTF-8, forward-slash separated) and the form preferred by the host OS.
// All higher-level code works with the portable form; the native form exists
// for handing paths to OS filesystem calls, including on platforms whose
// native path encoding is wide characters rather than bytes.
//
//	fn, err := pathkit.FilenameFromString("data/2026/report.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	child, err := fn.Join("chunk-0")
//
// # Lifecycle Primitives
//
// Creation and deletion are idempotent: being already in the desired state
// is success, reported through a boolean rather than an error.
//
//	created, err := pathkit.CreateDir(ctx, fn)  // false if already there
//	deleted, err := pathkit.DeleteDirTree(ctx, fn)  // false if already gone
//	deleted, err = pathkit.DeleteFile(ctx, fn)  // false if already gone
//
// DeleteFile never removes a directory; that always fails with [ErrIsDir].
// Errors for actual OS failures are *[PathError] values carrying the
// operation, the portable path, and the underlying OS error.
//
// Files are opened for output with functional options:
//
//	f, err := pathkit.OpenForWrite(ctx, fn, pathkit.WithTruncate())
//
// # Scoped Temporary Directories
//
// [TempDir] creates a uniquely named directory and guarantees best-effort
// recursive removal on teardown:
//
//	dir, err := pathkit.NewTempDir(ctx, "mytool-")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dir.Cleanup()
//
//	scratch, err := dir.Join("scratch")
//
// # Listing and Watching
//
// [ListMatches] filters directory entries with glob patterns, and
// [DirWatcher] hands out single-use [ChangeToken]s backed by native file
// system events:
//
//	files, err := pathkit.ListMatches(ctx, dir, "*.parquet", false)
//
//	w, err := pathkit.NewDirWatcher(dir)
//	token := w.Token()
//	if token.HasChanged() {
//	    // Handle change
//	}
//
// # Configuration
//
// pathkit can be configured via environment variables with the PATHKIT_
// prefix (temp root, temp-name retries, default permission bits); see
// [Config].
package pathkit
