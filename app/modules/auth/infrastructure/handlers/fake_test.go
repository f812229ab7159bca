package authhandlers

import (
	"context"

	authservice "github.com/Black-And-White-Club/miniclub/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/miniclub/app/modules/auth/domain"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	LoginFunc         func(ctx context.Context, email string) (*authservice.Session, error)
	RegisterFunc      func(ctx context.Context, email, name, nickname string) (*authservice.Session, error)
	ValidateTokenFunc func(ctx context.Context, tokenString string) (*authdomain.Claims, error)
}

func (f *FakeService) Login(ctx context.Context, email string) (*authservice.Session, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, email)
	}
	return &authservice.Session{Token: "fake-token"}, nil
}

func (f *FakeService) Register(ctx context.Context, email, name, nickname string) (*authservice.Session, error) {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, email, name, nickname)
	}
	return &authservice.Session{Token: "fake-token"}, nil
}

func (f *FakeService) ValidateToken(ctx context.Context, tokenString string) (*authdomain.Claims, error) {
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(ctx, tokenString)
	}
	return &authdomain.Claims{Email: "ana@club.com"}, nil
}
