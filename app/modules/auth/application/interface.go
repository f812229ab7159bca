package authservice

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/miniclub/app/modules/auth/domain"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

// Service issues and validates session tokens.
type Service interface {
	// Login opens a session for an already registered player.
	Login(ctx context.Context, email string) (*Session, error)

	// Register creates or updates the player and opens a session.
	Register(ctx context.Context, email, name, nickname string) (*Session, error)

	// ValidateToken validates a session token and returns the claims if valid.
	ValidateToken(ctx context.Context, tokenString string) (*authdomain.Claims, error)
}

// Session is a freshly issued token and the player it belongs to.
type Session struct {
	Token     string                     `json:"token"`
	ExpiresAt time.Time                  `json:"expires_at"`
	Player    *sharedtypes.PlayerProfile `json:"player"`
}
