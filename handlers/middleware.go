package handlers

import (
	"context"
	"errors"
	"net/http"

	"mascotas-shop/models"
	"mascotas-shop/session"

	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"
)

// Auth types a route can require.
const (
	AuthNone        = "none"
	AuthSession     = "session"
	AuthSessionJSON = "session-json"
)

// RequireSession gates next behind a session. Without one, AuthSession routes
// redirect to the login view (with loginError as ?error= when set) and
// AuthSessionJSON routes answer 401 JSON. An expired session and no session
// at all are treated the same.
func (h *ShopHandler) RequireSession(authType, loginError string, next HandlerFunc) HandlerFunc {
	if authType == AuthNone || authType == "" {
		return next
	}

	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.Load(r)
		if err == nil {
			next(session.NewContext(ctx, sess), w, r)
			return
		}

		if !errors.Is(err, session.ErrSessionNotFound) {
			logRequest(ctx, "error", "Failed to load session", zap.Error(err))
			if authType == AuthSessionJSON {
				writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Session error"))
				return
			}
		}

		logRequest(ctx, "info", "Unauthenticated request")
		if authType == AuthSessionJSON {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Success: false, Error: msgNotAuthenticated})
			return
		}
		redirectWith(w, r, "/", "error", loginError)
	}
}
