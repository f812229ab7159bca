package score

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	scoreservice "github.com/Black-And-White-Club/miniclub/app/modules/score/application"
	scorehandlers "github.com/Black-And-White-Club/miniclub/app/modules/score/infrastructure/handlers"
	"github.com/Black-And-White-Club/miniclub/app/modules/score/infrastructure/mirror"
	scoredb "github.com/Black-And-White-Club/miniclub/app/modules/score/infrastructure/repositories"
	userservice "github.com/Black-And-White-Club/miniclub/app/modules/user/application"
	"github.com/Black-And-White-Club/miniclub/config"
	"github.com/Black-And-White-Club/miniclub/internal/clock"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

// Module owns the score ledger and its mirror.
type Module struct {
	service  *scoreservice.ScoreService
	handlers scorehandlers.Handlers
}

// NewModule creates the score module. The mirror is built from cfg.Mirror and
// is disabled when it is not configured.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo scoredb.Repository,
	users userservice.Service,
	clk clock.Clock,
) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing score module")

	m := mirror.FromConfig(cfg.Mirror, logger)
	service := scoreservice.NewScoreService(repo, m, logger, obs.Metrics, obs.Tracer, clk)

	return &Module{
		service:  service,
		handlers: scorehandlers.NewScoreHandlers(service, users, logger, obs.Tracer),
	}
}

// RegisterRoutes mounts the scorecard endpoints behind requireSession.
func (m *Module) RegisterRoutes(r chi.Router, requireSession func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(requireSession)
		r.Post("/api/scorecards", m.handlers.HandleHTTPSubmit)
		r.Get("/api/scorecards", m.handlers.HandleHTTPHistory)
	})
}

// GetService returns the score service for use by other modules.
func (m *Module) GetService() scoreservice.Service {
	return m.service
}
