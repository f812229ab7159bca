package authjwt

import (
	"time"

	authdomain "github.com/Black-And-White-Club/miniclub/app/modules/auth/domain"
)

// Provider defines the interface for session token operations.
type Provider interface {
	// GenerateToken signs a session token for email, valid for ttl.
	GenerateToken(email string, ttl time.Duration) (string, *authdomain.Claims, error)

	// ValidateToken validates a session token and returns the claims if valid.
	ValidateToken(tokenString string) (*authdomain.Claims, error)
}
