//go:build windows

package pathkit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/sys/windows"
)

// nativeFromPortable converts a portable path to its native form on
// Windows: backslash separators and a path representable in the UTF-16
// encoding used by the wide Win32 filesystem APIs.
func nativeFromPortable(portable string) (string, error) {
	if !utf8.ValidString(portable) {
		return "", ErrInvalidPath
	}

	native := strings.ReplaceAll(portable, "/", `\`)

	// Round-trip through UTF-16 to reject anything the wide APIs
	// cannot represent.
	if native != "" {
		if _, err := windows.UTF16FromString(native); err != nil {
			return "", ErrInvalidPath
		}
	}

	return native, nil
}

// nativeSeparator is the path separator used by the native form
const nativeSeparator = `\`
