package scoreservice

import (
	"context"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

// Service is the append-only score ledger.
type Service interface {
	// Append validates strokes, stores the card locally and relays it to the mirror.
	// Mirror failures are logged and never returned.
	Append(ctx context.Context, email, displayName string, strokes []int) (*sharedtypes.Scorecard, error)

	// All returns every card in append order.
	All(ctx context.Context) ([]sharedtypes.Scorecard, error)
}
