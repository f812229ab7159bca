package authhandlers

import (
	"encoding/json"
	"errors"
	"net/http"

	authdomain "github.com/Black-And-White-Club/miniclub/app/modules/auth/domain"
	authservice "github.com/Black-And-White-Club/miniclub/app/modules/auth/application"
	userservice "github.com/Black-And-White-Club/miniclub/app/modules/user/application"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

const (
	SessionCookie = "session_token"
)

// LoginRequest is the body of POST /api/sessions.
type LoginRequest struct {
	Email string `json:"email"`
}

// RegisterRequest is the body of POST /api/players.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

// HandleHTTPLogin opens a session for a registered player.
func (h *AuthHandlers) HandleHTTPLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AuthHandlers.HandleHTTPLogin")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := h.service.Login(ctx, req.Email)
	if err != nil {
		h.writeServiceError(w, r, "HTTP Login failed", err)
		return
	}

	h.setSessionCookie(w, sess)
	writeJSON(w, http.StatusOK, sess)
}

// HandleHTTPRegister creates or updates the player and opens a session.
func (h *AuthHandlers) HandleHTTPRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AuthHandlers.HandleHTTPRegister")
	defer span.End()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := h.service.Register(ctx, req.Email, req.Name, req.Nickname)
	if err != nil {
		h.writeServiceError(w, r, "HTTP Register failed", err)
		return
	}

	h.setSessionCookie(w, sess)
	writeJSON(w, http.StatusCreated, sess)
}

// HandleHTTPLogout clears the session cookie. Tokens are stateless, so a
// client holding a bearer token simply discards it.
func (h *AuthHandlers) HandleHTTPLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		MaxAge:   -1,
	})

	w.WriteHeader(http.StatusNoContent)
}

// HandleHTTPCurrent reports the session the request carries.
func (h *AuthHandlers) HandleHTTPCurrent(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"email":      claims.Email,
		"expires_at": claims.ExpiresAt,
	})
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, sess *authservice.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
		Expires:  sess.ExpiresAt,
	})
}

func (h *AuthHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, userservice.ErrInvalidEmail):
		http.Error(w, "invalid email", http.StatusBadRequest)
	case errors.Is(err, userservice.ErrUserNotFound):
		http.Error(w, "player not registered", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, msg, observability.CorrelationAttr(ctx), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
