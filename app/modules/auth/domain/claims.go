package authdomain

import (
	"context"
	"time"
)

// Claims is the session a signed token carries. The email is self-asserted
// at login; the token only proves the server issued it.
type Claims struct {
	Email     string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

type claimsKey struct{}

// WithClaims returns a context carrying the request's session.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext returns the session set by the auth middleware, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok && c != nil
}
