package user

import (
	"context"

	userservice "github.com/Black-And-White-Club/miniclub/app/modules/user/application"
	userdb "github.com/Black-And-White-Club/miniclub/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/miniclub/internal/clock"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

// Module owns the identity store.
type Module struct {
	service *userservice.UserService
}

// NewModule creates the user module over repo.
func NewModule(ctx context.Context, obs *observability.Observability, repo userdb.Repository, clk clock.Clock) *Module {
	obs.Logger.InfoContext(ctx, "Initializing user module")
	return &Module{
		service: userservice.NewUserService(repo, obs.Logger, obs.Metrics, obs.Tracer, clk),
	}
}

// GetService returns the user service for use by other modules.
func (m *Module) GetService() userservice.Service {
	return m.service
}
