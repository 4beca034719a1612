package pathkit

import (
	"context"
	"fmt"
	"os"

	"github.com/gobwas/glob"
)

// ListMatches lists the entries under dir whose path relative to dir
// matches the given glob pattern. Matching is performed on the portable
// form with '/' as the separator, so patterns like "*.txt" or
// "logs/**/*.json" behave the same on every platform.
//
// With recursive set, the whole tree below dir is considered and
// patterns match against the slash-separated relative path; otherwise
// only immediate children are matched by name.
func ListMatches(ctx context.Context, dir Filename, pattern string, recursive bool) ([]Filename, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		// Continue
	}

	matcher, err := glob.Compile(pattern, '/')
	if err != nil {
		// A bad pattern is caller input, not an OS failure
		return nil, &PathError{
			Op:   "listmatches",
			Path: pattern,
			Err:  fmt.Errorf("%w: %v", ErrInvalidPath, err),
		}
	}

	info, err := os.Stat(dir.Native())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &PathError{
				Op:   "listmatches",
				Path: dir.Portable(),
				Err:  ErrNotExist,
			}
		}
		return nil, &PathError{
			Op:   "listmatches",
			Path: dir.Portable(),
			Err:  err,
		}
	}
	if !info.IsDir() {
		return nil, &PathError{
			Op:   "listmatches",
			Path: dir.Portable(),
			Err:  ErrNotDir,
		}
	}

	var results []Filename
	if err := listMatchesIn(ctx, dir, "", matcher, recursive, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func listMatchesIn(ctx context.Context, dir Filename, rel string, matcher glob.Glob, recursive bool, results *[]Filename) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Continue
	}

	entries, err := os.ReadDir(dir.Native())
	if err != nil {
		return &PathError{
			Op:   "listmatches",
			Path: dir.Portable(),
			Err:  err,
		}
	}

	for _, entry := range entries {
		child, err := dir.Join(entry.Name())
		if err != nil {
			return err
		}

		relPath := entry.Name()
		if rel != "" {
			relPath = rel + "/" + entry.Name()
		}

		if matcher.Match(relPath) {
			*results = append(*results, child)
		}

		if recursive && entry.IsDir() {
			if err := listMatchesIn(ctx, child, relPath, matcher, recursive, results); err != nil {
				return err
			}
		}
	}

	return nil
}
