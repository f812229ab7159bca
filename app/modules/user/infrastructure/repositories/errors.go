package userdb

import "errors"

// Sentinel errors for the user repository layer.
// These indicate infrastructure-level outcomes, not domain validation failures.
// The service layer decides how to map them into domain errors.
var (
	// ErrNotFound indicates the requested player row does not exist.
	ErrNotFound = errors.New("player record not found")

	// ErrCorrupt indicates the backing store could not be parsed.
	// Rows are never skipped; the whole read fails.
	ErrCorrupt = errors.New("player store is corrupt")
)
