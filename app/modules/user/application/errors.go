package userservice

import "errors"

// Domain errors for the user service.
// Callers treat these as normal outcomes (re-prompt, offer registration) rather than faults.
var (
	// ErrInvalidEmail indicates the address does not look like local@domain.tld.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrUserNotFound indicates no player is registered under the email.
	ErrUserNotFound = errors.New("user not found")

	// ErrPersistence indicates the player store could not be read or written.
	ErrPersistence = errors.New("player store unavailable")
)
