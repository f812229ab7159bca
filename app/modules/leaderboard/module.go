package leaderboard

import (
	"context"

	"github.com/go-chi/chi/v5"

	leaderboardservice "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/infrastructure/handlers"
	"github.com/Black-And-White-Club/miniclub/config"
	"github.com/Black-And-White-Club/miniclub/internal/clock"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

// Module serves rankings over the score ledger.
type Module struct {
	service  *leaderboardservice.LeaderboardService
	handlers leaderboardhandlers.Handlers
}

// NewModule creates the leaderboard module reading from ledger.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	ledger leaderboardservice.Ledger,
	clk clock.Clock,
) *Module {
	obs.Logger.InfoContext(ctx, "Initializing leaderboard module")

	service := leaderboardservice.NewLeaderboardService(ledger, obs.Logger, obs.Metrics, obs.Tracer, clk, cfg.Leaderboard.Limit)
	return &Module{
		service:  service,
		handlers: leaderboardhandlers.NewLeaderboardHandlers(service, obs.Logger, obs.Tracer),
	}
}

// RegisterRoutes mounts the public ranking endpoints.
func (m *Module) RegisterRoutes(r chi.Router) {
	r.Get("/api/leaderboard", m.handlers.HandleHTTPLeaderboard)
	r.Get("/api/leaderboard/export", m.handlers.HandleHTTPExport)
	r.Get("/api/players/{email}/chart", m.handlers.HandleHTTPPlayerChart)
}

// GetService returns the leaderboard service.
func (m *Module) GetService() leaderboardservice.Service {
	return m.service
}
