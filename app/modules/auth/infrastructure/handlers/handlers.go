package authhandlers

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	authservice "github.com/Black-And-White-Club/miniclub/app/modules/auth/application"
)

// Handlers serves the session endpoints.
type Handlers interface {
	HandleHTTPLogin(w http.ResponseWriter, r *http.Request)
	HandleHTTPRegister(w http.ResponseWriter, r *http.Request)
	HandleHTTPLogout(w http.ResponseWriter, r *http.Request)
	HandleHTTPCurrent(w http.ResponseWriter, r *http.Request)
}

// AuthHandlers implements the Handlers interface.
type AuthHandlers struct {
	service       authservice.Service
	logger        *slog.Logger
	tracer        trace.Tracer
	secureCookies bool
}

// NewAuthHandlers creates a new AuthHandlers instance.
func NewAuthHandlers(
	service authservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	secureCookies bool,
) Handlers {
	return &AuthHandlers{
		service:       service,
		logger:        logger,
		tracer:        tracer,
		secureCookies: secureCookies,
	}
}
