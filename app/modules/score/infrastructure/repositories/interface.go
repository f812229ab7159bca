package scoredb

import (
	"context"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

// Repository is the local, authoritative, append-only scorecard ledger.
//
// Error semantics:
//   - ErrCorrupt: stored data cannot be parsed
//   - other errors: infrastructure failures
type Repository interface {
	// Append durably stores card after every existing row.
	Append(ctx context.Context, card sharedtypes.Scorecard) error

	// List returns every stored card in append order.
	List(ctx context.Context) ([]sharedtypes.Scorecard, error)
}
