package scorehandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	authdomain "github.com/Black-And-White-Club/miniclub/app/modules/auth/domain"
	scoreservice "github.com/Black-And-White-Club/miniclub/app/modules/score/application"
	userservice "github.com/Black-And-White-Club/miniclub/app/modules/user/application"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

// Handlers serves scorecard submission and history.
type Handlers interface {
	HandleHTTPSubmit(w http.ResponseWriter, r *http.Request)
	HandleHTTPHistory(w http.ResponseWriter, r *http.Request)
}

// ScoreHandlers implements Handlers.
type ScoreHandlers struct {
	service scoreservice.Service
	users   userservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewScoreHandlers creates a new ScoreHandlers instance.
func NewScoreHandlers(
	service scoreservice.Service,
	users userservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &ScoreHandlers{
		service: service,
		users:   users,
		logger:  logger,
		tracer:  tracer,
	}
}

// SubmitRequest is the body of POST /api/scorecards.
type SubmitRequest struct {
	Strokes []int `json:"strokes"`
}

// HandleHTTPSubmit appends a scorecard for the session's player. The display
// name is taken from the player's profile at submission time.
func (h *ScoreHandlers) HandleHTTPSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoreHandlers.HandleHTTPSubmit")
	defer span.End()

	claims, ok := authdomain.ClaimsFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	player, err := h.users.Lookup(ctx, claims.Email)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserNotFound), errors.Is(err, userservice.ErrInvalidEmail):
			http.Error(w, "player not registered", http.StatusNotFound)
		default:
			h.logger.ErrorContext(ctx, "Failed to resolve player for submission",
				observability.CorrelationAttr(ctx),
				slog.String("email", claims.Email),
				slog.Any("error", err),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	card, err := h.service.Append(ctx, player.Email, userservice.DisplayName(player), req.Strokes)
	if err != nil {
		if errors.Is(err, scoreservice.ErrInvalidScorecard) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "Failed to append scorecard",
			observability.CorrelationAttr(ctx),
			slog.String("email", player.Email),
			slog.Any("error", err),
		)
		http.Error(w, "scorecard could not be saved", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

// HandleHTTPHistory lists the session player's own scorecards, oldest first.
func (h *ScoreHandlers) HandleHTTPHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoreHandlers.HandleHTTPHistory")
	defer span.End()

	claims, ok := authdomain.ClaimsFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	cards, err := h.service.All(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to read ledger",
			observability.CorrelationAttr(ctx),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	mine := make([]sharedtypes.Scorecard, 0)
	for _, c := range cards {
		if c.Email == claims.Email {
			mine = append(mine, c)
		}
	}
	writeJSON(w, http.StatusOK, mine)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
