//go:build !windows

package pathkit

// nativeFromPortable converts a portable path to its native form on
// POSIX-like systems. The native encoding is the same byte sequence as
// the portable form, so the conversion is the identity.
func nativeFromPortable(portable string) (string, error) {
	return portable, nil
}

// nativeSeparator is the path separator used by the native form
const nativeSeparator = "/"
