package handlers

import (
	"context"
	"net/http"

	"mascotas-shop/models"

	"go.uber.org/zap"
)

// Logout handles GET /logout. Destroy errors are logged and the shopper is
// redirected regardless.
func (h *ShopHandler) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Destroy(ctx, w, r)
	switch {
	case err != nil:
		logRequest(ctx, "error", "Error closing session", zap.Error(err))
	case sess != nil:
		h.clearCart(ctx, sess.ID)
		logRequest(ctx, "info", "Session closed", zap.String("email", sess.User.Email))
	default:
		logRequest(ctx, "info", "Logout without session")
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Debug handles GET /debug - a JSON dump of users (passwords masked), the
// caller's session and its cart. Development aid, open to anyone.
func (h *ShopHandler) Debug(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.Users(ctx)
	if err != nil {
		logRequest(ctx, "error", "Failed to list users", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: msgInternal})
		return
	}

	resp := models.DebugResponse{
		Status:     "OK",
		Users:      make([]models.DebugUser, 0, len(users)),
		TotalUsers: len(users),
		Cart:       []models.CartLine{},
	}
	for _, u := range users {
		resp.Users = append(resp.Users, u.Masked())
	}

	if sess, err := h.sessions.Load(r); err == nil {
		resp.Session = sess
		lines, err := h.carts.Lines(ctx, sess.ID)
		if err != nil {
			logRequest(ctx, "error", "Failed to load cart", zap.Error(err))
		} else {
			resp.Cart = lines
		}
	}

	logRequest(ctx, "debug", "Debug dump", zap.Int("users", resp.TotalUsers), zap.Int("cart_lines", len(resp.Cart)))
	writeJSON(w, http.StatusOK, resp)
}

// Reset handles GET /reset - restores the seed account as the only user,
// drops every cart and destroys the caller's session. Not gated.
func (h *ShopHandler) Reset(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Reset(ctx); err != nil {
		logRequest(ctx, "error", "Reset failed", zap.Error(err))
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}
	if _, err := h.sessions.Destroy(ctx, w, r); err != nil {
		logRequest(ctx, "error", "Error closing session", zap.Error(err))
	}

	logRequest(ctx, "info", "Data reset to seed account")
	redirectWith(w, r, "/", "success", msgResetDone)
}

// Health handles GET /health.
func (h *ShopHandler) Health(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": h.service})
}
