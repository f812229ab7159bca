package scoreservice

import "errors"

// Domain errors for the score service.
var (
	// ErrInvalidScorecard indicates the wrong number of strokes or a stroke outside [1, 20].
	// The ledger is never touched when this is returned.
	ErrInvalidScorecard = errors.New("invalid scorecard")

	// ErrPersistence indicates the local ledger could not be read or written.
	// It is the only fatal outcome of Append.
	ErrPersistence = errors.New("score ledger unavailable")
)
