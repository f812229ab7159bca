package userservice

import (
	"context"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

// Service is the identity store: email-keyed player profiles.
type Service interface {
	// ResolveOrCreate registers the player or updates the non-blank name fields, and
	// always writes. Fails with ErrInvalidEmail or ErrPersistence.
	ResolveOrCreate(ctx context.Context, email, name, nickname string) (*sharedtypes.PlayerProfile, error)

	// Lookup returns the registered player. Fails with ErrInvalidEmail, ErrUserNotFound
	// or ErrPersistence. Never writes.
	Lookup(ctx context.Context, email string) (*sharedtypes.PlayerProfile, error)
}
