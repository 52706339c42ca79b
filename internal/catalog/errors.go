package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath indicates a movie path that points at a directory.
	ErrInvalidPath = errors.New("path is a directory")

	// ErrUnknownLanguage indicates a language name or code outside the supported set.
	ErrUnknownLanguage = errors.New("unknown language")
)

// contract panics when a caller breaks a documented precondition.
// These are programming errors, not conditions to recover from.
func contract(ok bool, format string, args ...any) {
	if !ok {
		panic("catalog: " + fmt.Sprintf(format, args...))
	}
}
