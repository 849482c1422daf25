package entry

import "errors"

// Sentinel errors for package entry.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrEntryNotFound is returned when an id has no registered entry.
	// Callers must treat this as a recoverable display error.
	ErrEntryNotFound = errors.New("entry not found in store")

	// ErrNotDirectory is returned when a directory operation is applied
	// to a non-directory entry.
	ErrNotDirectory = errors.New("entry is not a directory")

	// ErrNoParent is returned when the ancestry of an entry is broken
	// and its path cannot be reconstructed.
	ErrNoParent = errors.New("entry has no resolvable parent")

	// ErrSpecialEntry is returned when a filesystem operation is applied
	// to a synthetic entry.
	ErrSpecialEntry = errors.New("operation not valid for synthetic entry")
)
