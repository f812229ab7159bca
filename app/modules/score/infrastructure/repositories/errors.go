package scoredb

import "errors"

// Sentinel errors for the repository layer.
// These are infrastructure-level errors that indicate store state, not business logic failures.
var (
	// ErrCorrupt indicates the ledger could not be parsed. Reads fail as a whole;
	// rows are never dropped.
	ErrCorrupt = errors.New("score ledger is corrupt")
)
