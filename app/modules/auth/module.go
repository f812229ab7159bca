package auth

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	authservice "github.com/Black-And-White-Club/miniclub/app/modules/auth/application"
	authhandlers "github.com/Black-And-White-Club/miniclub/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/miniclub/app/modules/auth/infrastructure/jwt"
	userservice "github.com/Black-And-White-Club/miniclub/app/modules/user/application"
	"github.com/Black-And-White-Club/miniclub/config"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

// Module represents the session module.
type Module struct {
	config   *config.Config
	service  authservice.Service
	handlers authhandlers.Handlers
	limiter  *authhandlers.IPRateLimiter
}

// NewModule creates a new auth module.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	users userservice.Service,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer

	logger.InfoContext(ctx, "Initializing auth module")

	secret := cfg.Session.Secret
	if secret == "" {
		// Sessions issued with a per-process secret do not survive a restart.
		logger.WarnContext(ctx, "SESSION_SECRET not set, using an ephemeral session secret")
		secret = uuid.NewString() + uuid.NewString()
	}

	jwtProvider := authjwt.NewProvider(secret)
	service := authservice.NewService(
		jwtProvider,
		users,
		authservice.Config{SessionTTL: cfg.Session.TTL},
		logger,
		tracer,
	)

	// Use secure cookies unless in development
	secureCookies := cfg.Observability.Environment != "development"

	return &Module{
		config:   cfg,
		service:  service,
		handlers: authhandlers.NewAuthHandlers(service, logger, tracer, secureCookies),
		limiter:  authhandlers.NewIPRateLimiter(rate.Limit(cfg.HTTP.RatePerSecond), cfg.HTTP.Burst),
	}, nil
}

// RegisterRoutes mounts the session endpoints.
func (m *Module) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(authhandlers.RateLimitMiddleware(m.limiter))

		// Public routes
		r.Post("/api/sessions", m.handlers.HandleHTTPLogin)
		r.Post("/api/players", m.handlers.HandleHTTPRegister)
		r.Delete("/api/sessions", m.handlers.HandleHTTPLogout)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(m.RequireSession())
			r.Get("/api/sessions/current", m.handlers.HandleHTTPCurrent)
		})
	})
}

// CORS returns the CORS middleware for the configured origins.
func (m *Module) CORS() func(http.Handler) http.Handler {
	return authhandlers.CORSMiddleware(m.config.HTTP.AllowedOrigins)
}

// RequireSession returns middleware other modules use to guard their routes.
func (m *Module) RequireSession() func(http.Handler) http.Handler {
	return authhandlers.SessionMiddleware(m.service)
}

// GetService returns the auth service for use by other modules.
func (m *Module) GetService() authservice.Service {
	return m.service
}
