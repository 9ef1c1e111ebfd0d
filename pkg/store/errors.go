package store

import (
	"errors"
	"fmt"
)

// Store shape errors indicate the store or an entry does not look the
// way the pass(1) layout requires.
var (
	// ErrStoreNotFound indicates no password store exists at the root path.
	ErrStoreNotFound = errors.New("password store not found")

	// ErrInvalidFormat indicates a path has the wrong shape: a child that
	// is neither file nor directory, a missing secret suffix, a directory
	// where a key manifest file was expected, or a path outside the store.
	ErrInvalidFormat = errors.New("invalid store format")

	// ErrPathEncoding indicates a path cannot be represented as text.
	ErrPathEncoding = errors.New("path is not valid text")
)

// Lookup errors indicate a logical name did not resolve to exactly one entry.
var (
	// ErrEntryNotFound indicates no entry exists under the given name.
	ErrEntryNotFound = errors.New("entry not found in store")

	// ErrAmbiguousName indicates a name matches both a file and a directory.
	ErrAmbiguousName = errors.New("name matches both a file and a directory")
)

// invalidFormat wraps ErrInvalidFormat with the offending path and reason.
func invalidFormat(path, reason string) error {
	return fmt.Errorf("%s: %s: %w", path, reason, ErrInvalidFormat)
}
