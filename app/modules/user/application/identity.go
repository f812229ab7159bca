package userservice

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	userdb "github.com/Black-And-White-Club/miniclub/app/modules/user/infrastructure/repositories"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/Black-And-White-Club/miniclub/internal/results"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizeEmail trims and lower-cases email and checks its local@domain.tld shape.
func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(normalized) {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}

// DisplayName is the nickname, else the name, else the email.
func DisplayName(p *sharedtypes.PlayerProfile) string {
	if p == nil {
		return ""
	}
	if nick := strings.TrimSpace(p.Nickname); nick != "" {
		return nick
	}
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return p.Email
}

// ResolveOrCreate registers a new player or refreshes an existing one's name fields.
func (s *UserService) ResolveOrCreate(ctx context.Context, email, name, nickname string) (*sharedtypes.PlayerProfile, error) {
	normalized, normErr := NormalizeEmail(email)
	name = strings.TrimSpace(name)
	nickname = strings.TrimSpace(nickname)

	result, err := withTelemetry(s, ctx, "ResolveOrCreate", normalized, func(ctx context.Context) (results.OperationResult[sharedtypes.PlayerProfile, error], error) {
		if normErr != nil {
			return results.FailureResult[sharedtypes.PlayerProfile, error](normErr), nil
		}

		player, err := s.repo.Modify(ctx, normalized, func(current *userdb.Player) (*userdb.Player, error) {
			if current == nil {
				return &userdb.Player{
					Email:        normalized,
					Name:         name,
					Nickname:     nickname,
					RegisteredAt: s.clock.Now().Truncate(time.Second),
				}, nil
			}
			next := *current
			if name != "" {
				next.Name = name
			}
			if nickname != "" {
				next.Nickname = nickname
			}
			return &next, nil
		})
		if err != nil {
			return results.OperationResult[sharedtypes.PlayerProfile, error]{}, err
		}
		return results.SuccessResult[sharedtypes.PlayerProfile, error](*player.ToProfile()), nil
	})
	return unwrap(result, err)
}

// Lookup returns the registered player without writing.
func (s *UserService) Lookup(ctx context.Context, email string) (*sharedtypes.PlayerProfile, error) {
	normalized, normErr := NormalizeEmail(email)

	result, err := withTelemetry(s, ctx, "Lookup", normalized, func(ctx context.Context) (results.OperationResult[sharedtypes.PlayerProfile, error], error) {
		if normErr != nil {
			return results.FailureResult[sharedtypes.PlayerProfile, error](normErr), nil
		}

		player, err := s.repo.Get(ctx, normalized)
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[sharedtypes.PlayerProfile, error](ErrUserNotFound), nil
		}
		if err != nil {
			return results.OperationResult[sharedtypes.PlayerProfile, error]{}, err
		}
		return results.SuccessResult[sharedtypes.PlayerProfile, error](*player.ToProfile()), nil
	})
	return unwrap(result, err)
}
