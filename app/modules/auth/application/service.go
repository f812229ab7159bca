package authservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	authdomain "github.com/Black-And-White-Club/miniclub/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/miniclub/app/modules/auth/infrastructure/jwt"
	userservice "github.com/Black-And-White-Club/miniclub/app/modules/user/application"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

// Config holds the configuration for the auth service.
type Config struct {
	SessionTTL time.Duration
}

// DefaultSessionTTL applies when Config.SessionTTL is zero.
const DefaultSessionTTL = 12 * time.Hour

// service implements the Service interface.
type service struct {
	users       userservice.Service
	jwtProvider authjwt.Provider
	config      Config
	logger      *slog.Logger
	tracer      trace.Tracer
}

// NewService creates a new auth service.
func NewService(
	jwtProvider authjwt.Provider,
	users userservice.Service,
	config Config,
	logger *slog.Logger,
	tracer trace.Tracer,
) Service {
	if config.SessionTTL <= 0 {
		config.SessionTTL = DefaultSessionTTL
	}
	return &service{
		users:       users,
		jwtProvider: jwtProvider,
		config:      config,
		logger:      logger,
		tracer:      tracer,
	}
}

// Login opens a session for a registered player. Unknown emails fail with
// userservice.ErrUserNotFound so the caller can offer registration.
func (s *service) Login(ctx context.Context, email string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	player, err := s.users.Lookup(ctx, email)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return s.issue(ctx, player)
}

// Register upserts the player and opens a session.
func (s *service) Register(ctx context.Context, email, name, nickname string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	player, err := s.users.ResolveOrCreate(ctx, email, name, nickname)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return s.issue(ctx, player)
}

func (s *service) issue(ctx context.Context, player *sharedtypes.PlayerProfile) (*Session, error) {
	token, claims, err := s.jwtProvider.GenerateToken(player.Email, s.config.SessionTTL)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to generate token",
			observability.CorrelationAttr(ctx),
			slog.String("email", player.Email),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %w", ErrGenerateToken, err)
	}

	s.logger.InfoContext(ctx, "Session issued",
		observability.CorrelationAttr(ctx),
		slog.String("email", player.Email),
		slog.Time("expires_at", claims.ExpiresAt),
	)
	return &Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		Player:    player,
	}, nil
}

// ValidateToken validates a session token and returns the claims if valid.
func (s *service) ValidateToken(ctx context.Context, tokenString string) (*authdomain.Claims, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.ValidateToken")
	defer span.End()

	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.jwtProvider.ValidateToken(tokenString)
	if err != nil {
		s.logger.WarnContext(ctx, "Token validation failed",
			observability.CorrelationAttr(ctx),
			slog.Any("error", err),
		)
		if errors.Is(err, authjwt.ErrExpiredToken) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	return claims, nil
}
