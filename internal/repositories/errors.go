package repositories

import "errors"

// Sentinel errors shared by all repository implementations so callers can
// branch with errors.Is instead of matching message strings.
var (
	// ErrNotFound is returned when a lookup, update or delete misses.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a unique-email constraint rejects a write.
	ErrDuplicateEmail = errors.New("email already registered")
)
