package pathkit

import (
	"strings"
)

// Filename represents a filesystem path in both a portable form (UTF-8,
// forward-slash separated) and the platform-native form used by OS calls.
// Both forms always denote the same logical path.
//
// Filename has value semantics: it is immutable after construction and may
// be freely copied. Equality and ordering are defined over the portable
// form, so two filenames built via different routes that denote the same
// path compare equal.
type Filename struct {
	portable string
	native   string
}

// FilenameFromString parses a portable path string into a Filename.
//
// The input must be UTF-8 with forward-slash separators and must not
// contain NUL bytes. On platforms with a wide-character native path
// encoding, the string must also convert cleanly to that encoding.
// Invalid input fails with a *PathError wrapping [ErrInvalidPath].
func FilenameFromString(s string) (Filename, error) {
	if strings.ContainsRune(s, 0) {
		return Filename{}, &PathError{
			Op:   "parse",
			Path: s,
			Err:  ErrInvalidPath,
		}
	}

	native, err := nativeFromPortable(s)
	if err != nil {
		return Filename{}, &PathError{
			Op:   "parse",
			Path: s,
			Err:  err,
		}
	}

	return Filename{portable: s, native: native}, nil
}

// Join appends segment to the filename, inserting exactly one separator
// between the two. The operation is purely lexical: it does not collapse
// ".." components, resolve symlinks, or touch the filesystem.
//
// The segment must be non-empty, must not contain NUL bytes, and must be
// relative (no leading separator).
func (f Filename) Join(segment string) (Filename, error) {
	if segment == "" || strings.ContainsRune(segment, 0) || strings.HasPrefix(segment, "/") {
		return Filename{}, &PathError{
			Op:   "join",
			Path: segment,
			Err:  ErrInvalidPath,
		}
	}

	joined := f.portable
	switch {
	case joined == "":
		joined = segment
	case strings.HasSuffix(joined, "/"):
		joined += segment
	default:
		joined += "/" + segment
	}

	return FilenameFromString(joined)
}

// Portable returns the forward-slash UTF-8 form of the path
func (f Filename) Portable() string {
	return f.portable
}

// Native returns the platform-native form of the path, suitable for
// passing to OS filesystem calls
func (f Filename) Native() string {
	return f.native
}

// String implements fmt.Stringer and returns the portable form
func (f Filename) String() string {
	return f.portable
}

// Equal reports whether two filenames denote the same path
func (f Filename) Equal(other Filename) bool {
	return f.portable == other.portable
}

// Compare compares two filenames by their portable form, returning
// -1, 0 or +1 as in strings.Compare
func (f Filename) Compare(other Filename) int {
	return strings.Compare(f.portable, other.portable)
}

// Less reports whether f orders before other
func (f Filename) Less(other Filename) bool {
	return f.portable < other.portable
}
