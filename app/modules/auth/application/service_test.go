package authservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace/noop"

	authdomain "github.com/Black-And-White-Club/miniclub/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/miniclub/app/modules/auth/infrastructure/jwt"
	userservice "github.com/Black-And-White-Club/miniclub/app/modules/user/application"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

func newTestService(j *FakeJWTProvider, u *FakeUserService, ttl time.Duration) Service {
	return NewService(
		j,
		u,
		Config{SessionTTL: ttl},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		noop.NewTracerProvider().Tracer("test"),
	)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(j *FakeJWTProvider, u *FakeUserService)
		wantErr   error
		wantTrace []string
	}{
		{
			name:      "registered player",
			wantTrace: []string{"Lookup"},
		},
		{
			name: "unknown player",
			setup: func(j *FakeJWTProvider, u *FakeUserService) {
				u.LookupFunc = func(ctx context.Context, email string) (*sharedtypes.PlayerProfile, error) {
					return nil, userservice.ErrUserNotFound
				}
			},
			wantErr:   userservice.ErrUserNotFound,
			wantTrace: []string{"Lookup"},
		},
		{
			name: "signing failure",
			setup: func(j *FakeJWTProvider, u *FakeUserService) {
				j.GenerateTokenFunc = func(email string, ttl time.Duration) (string, *authdomain.Claims, error) {
					return "", nil, errors.New("boom")
				}
			},
			wantErr:   ErrGenerateToken,
			wantTrace: []string{"Lookup"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &FakeJWTProvider{}
			u := &FakeUserService{}
			if tt.setup != nil {
				tt.setup(j, u)
			}
			s := newTestService(j, u, 0)

			sess, err := s.Login(ctx, "ana@club.com")
			if !slices.Equal(u.Trace(), tt.wantTrace) {
				t.Errorf("user trace = %v, want %v", u.Trace(), tt.wantTrace)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sess.Token != "fake-token" {
				t.Errorf("expected fake-token, got %s", sess.Token)
			}
			if got := sess.ExpiresAt.Sub(time.Now()); got < DefaultSessionTTL-time.Minute || got > DefaultSessionTTL {
				t.Errorf("expected default ttl, got %v", got)
			}
		})
	}
}

func TestService_Register(t *testing.T) {
	u := &FakeUserService{}
	j := &FakeJWTProvider{}
	var gotTTL time.Duration
	j.GenerateTokenFunc = func(email string, ttl time.Duration) (string, *authdomain.Claims, error) {
		gotTTL = ttl
		return "signed", &authdomain.Claims{Email: email, ExpiresAt: time.Now().Add(ttl)}, nil
	}
	s := newTestService(j, u, time.Hour)

	sess, err := s.Register(context.Background(), "ana@club.com", "Ana", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Player.Name != "Ana" {
		t.Errorf("expected player name Ana, got %s", sess.Player.Name)
	}
	if gotTTL != time.Hour {
		t.Errorf("expected configured ttl, got %v", gotTTL)
	}
	if !slices.Equal(u.Trace(), []string{"ResolveOrCreate"}) {
		t.Errorf("unexpected trace %v", u.Trace())
	}

	u.ResolveOrCreateFunc = func(ctx context.Context, email, name, nickname string) (*sharedtypes.PlayerProfile, error) {
		return nil, userservice.ErrInvalidEmail
	}
	if _, err := s.Register(context.Background(), "nope", "", ""); !errors.Is(err, userservice.ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestService_ValidateToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		provider error
		wantErr  error
	}{
		{name: "valid", token: "t"},
		{name: "missing", token: "", wantErr: ErrMissingToken},
		{name: "expired", token: "t", provider: authjwt.ErrExpiredToken, wantErr: ErrExpiredToken},
		{name: "bad signature", token: "t", provider: authjwt.ErrInvalidSignature, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &FakeJWTProvider{}
			if tt.provider != nil {
				j.ValidateTokenFunc = func(string) (*authdomain.Claims, error) { return nil, tt.provider }
			}
			s := newTestService(j, &FakeUserService{}, 0)

			claims, err := s.ValidateToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claims.Email != "ana@club.com" {
				t.Errorf("expected ana@club.com, got %s", claims.Email)
			}
		})
	}
}

func TestService_RoundTripWithRealProvider(t *testing.T) {
	s := NewService(
		authjwt.NewProvider("test-secret-at-least-32-chars-long!!"),
		&FakeUserService{},
		Config{SessionTTL: time.Minute},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		noop.NewTracerProvider().Tracer("test"),
	)

	sess, err := s.Login(context.Background(), "ana@club.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := s.ValidateToken(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "ana@club.com" {
		t.Errorf("expected ana@club.com, got %s", claims.Email)
	}
}
