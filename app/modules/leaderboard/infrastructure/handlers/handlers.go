package leaderboardhandlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"

	leaderboardservice "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/application"
	leaderboarddomain "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/domain"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handlers serves rankings and their renderings.
type Handlers interface {
	HandleHTTPLeaderboard(w http.ResponseWriter, r *http.Request)
	HandleHTTPExport(w http.ResponseWriter, r *http.Request)
	HandleHTTPPlayerChart(w http.ResponseWriter, r *http.Request)
}

// LeaderboardHandlers implements Handlers.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers instance.
func NewLeaderboardHandlers(service leaderboardservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &LeaderboardHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// LeaderboardResponse is the body of GET /api/leaderboard.
type LeaderboardResponse struct {
	Window leaderboarddomain.Window     `json:"window"`
	Label  string                       `json:"label"`
	Rows   []sharedtypes.LeaderboardRow `json:"rows"`
}

// HandleHTTPLeaderboard ranks the ledger for ?window=. No rows is an empty list.
func (h *LeaderboardHandlers) HandleHTTPLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "LeaderboardHandlers.HandleHTTPLeaderboard")
	defer span.End()

	window, err := leaderboarddomain.ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := h.service.GetLeaderboard(ctx, window)
	if err != nil {
		h.internalError(w, r, "Failed to fetch leaderboard", err)
		return
	}
	if rows == nil {
		rows = []sharedtypes.LeaderboardRow{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(LeaderboardResponse{Window: window, Label: window.Label(), Rows: rows}); err != nil {
		h.logger.WarnContext(ctx, "Failed to encode leaderboard", slog.Any("error", err))
	}
}

// HandleHTTPExport streams the ranking for ?window= as an XLSX attachment.
func (h *LeaderboardHandlers) HandleHTTPExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "LeaderboardHandlers.HandleHTTPExport")
	defer span.End()

	window, err := leaderboarddomain.ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Buffer so a failure can still become a 500 instead of a truncated file.
	var buf bytes.Buffer
	if err := h.service.ExportXLSX(ctx, window, &buf); err != nil {
		h.internalError(w, r, "Failed to export leaderboard", err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="ranking_%s.xlsx"`, window))
	_, _ = buf.WriteTo(w)
}

// HandleHTTPPlayerChart renders the player's score history as PNG.
func (h *LeaderboardHandlers) HandleHTTPPlayerChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "LeaderboardHandlers.HandleHTTPPlayerChart")
	defer span.End()

	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil || email == "" {
		http.Error(w, "invalid email", http.StatusBadRequest)
		return
	}

	png, err := h.service.PlayerHistoryChart(ctx, email)
	if err != nil {
		h.internalError(w, r, "Failed to render player chart", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

func (h *LeaderboardHandlers) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	h.logger.ErrorContext(ctx, msg, observability.CorrelationAttr(ctx), slog.Any("error", err))
	status := http.StatusInternalServerError
	if errors.Is(err, leaderboardservice.ErrLedgerUnavailable) {
		status = http.StatusServiceUnavailable
	}
	http.Error(w, http.StatusText(status), status)
}
