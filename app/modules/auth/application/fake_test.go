package authservice

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/miniclub/app/modules/auth/domain"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

// ------------------------
// Fake JWT Provider
// ------------------------

type FakeJWTProvider struct {
	trace []string

	GenerateTokenFunc func(email string, ttl time.Duration) (string, *authdomain.Claims, error)
	ValidateTokenFunc func(tokenString string) (*authdomain.Claims, error)
}

func (f *FakeJWTProvider) Trace() []string {
	return f.trace
}

func (f *FakeJWTProvider) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeJWTProvider) GenerateToken(email string, ttl time.Duration) (string, *authdomain.Claims, error) {
	f.record("GenerateToken")
	if f.GenerateTokenFunc != nil {
		return f.GenerateTokenFunc(email, ttl)
	}
	now := time.Now()
	return "fake-token", &authdomain.Claims{Email: email, IssuedAt: now, ExpiresAt: now.Add(ttl)}, nil
}

func (f *FakeJWTProvider) ValidateToken(tokenString string) (*authdomain.Claims, error) {
	f.record("ValidateToken")
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(tokenString)
	}
	return &authdomain.Claims{Email: "ana@club.com"}, nil
}

// ------------------------
// Fake User Service
// ------------------------

type FakeUserService struct {
	trace []string

	ResolveOrCreateFunc func(ctx context.Context, email, name, nickname string) (*sharedtypes.PlayerProfile, error)
	LookupFunc          func(ctx context.Context, email string) (*sharedtypes.PlayerProfile, error)
}

func (f *FakeUserService) Trace() []string {
	return f.trace
}

func (f *FakeUserService) ResolveOrCreate(ctx context.Context, email, name, nickname string) (*sharedtypes.PlayerProfile, error) {
	f.trace = append(f.trace, "ResolveOrCreate")
	if f.ResolveOrCreateFunc != nil {
		return f.ResolveOrCreateFunc(ctx, email, name, nickname)
	}
	return &sharedtypes.PlayerProfile{Email: email, Name: name, Nickname: nickname}, nil
}

func (f *FakeUserService) Lookup(ctx context.Context, email string) (*sharedtypes.PlayerProfile, error) {
	f.trace = append(f.trace, "Lookup")
	if f.LookupFunc != nil {
		return f.LookupFunc(ctx, email)
	}
	return &sharedtypes.PlayerProfile{Email: email}, nil
}
