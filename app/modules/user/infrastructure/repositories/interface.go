package userdb

import (
	"context"
)

// ModifyFunc receives the stored player (nil when absent) and returns the row to persist.
// Returning an error aborts the write and is passed back unchanged.
type ModifyFunc func(current *Player) (*Player, error)

// Repository defines the persistence contract for player identities.
//
// Error semantics:
//   - ErrNotFound: requested record does not exist (Get)
//   - ErrCorrupt: stored data cannot be parsed
//   - other errors: infrastructure failures
type Repository interface {
	// Get returns the player stored under the normalized email.
	Get(ctx context.Context, email string) (*Player, error)

	// Modify runs fn as one read-modify-write cycle for email and persists its result.
	Modify(ctx context.Context, email string, fn ModifyFunc) (*Player, error)

	// List returns every player in storage order.
	List(ctx context.Context) ([]*Player, error)
}
