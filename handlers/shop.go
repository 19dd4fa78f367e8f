package handlers

import (
	"context"
	"errors"
	"net/http"

	"mascotas-shop/catalog"
	"mascotas-shop/repositories"
	"mascotas-shop/services"
	"mascotas-shop/session"
	"mascotas-shop/views"

	"go.uber.org/zap"
)

// ShopHandler serves every page and API of the shop.
type ShopHandler struct {
	auth     *services.AuthService
	carts    *services.CartService
	sessions *session.Manager
	views    *views.Renderer
	service  string
}

// NewShopHandler creates the shop handler. service names the process in
// health responses.
func NewShopHandler(auth *services.AuthService, carts *services.CartService, sessions *session.Manager, renderer *views.Renderer, service string) *ShopHandler {
	return &ShopHandler{
		auth:     auth,
		carts:    carts,
		sessions: sessions,
		views:    renderer,
		service:  service,
	}
}

// LoginPage handles GET / - login view, or /products when already signed in.
func (h *ShopHandler) LoginPage(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if _, err := h.sessions.Load(r); err == nil {
		http.Redirect(w, r, "/products", http.StatusFound)
		return
	}

	query := r.URL.Query()
	h.render(ctx, w, views.PageLogin, views.PageData{
		Title:   titleLogin,
		Error:   query.Get("error"),
		Success: query.Get("success"),
	})
}

// Login handles POST /login.
func (h *ShopHandler) Login(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	logRequest(ctx, "info", "Login attempt", zap.String("email", email))

	user, err := h.auth.Login(ctx, email, r.FormValue("password"))
	if errors.Is(err, services.ErrInvalidCredentials) {
		logRequest(ctx, "info", "Login failed", zap.String("email", email))
		redirectWith(w, r, "/", "error", msgInvalidCredentials)
		return
	}
	if err != nil {
		logRequest(ctx, "error", "Login lookup failed", zap.Error(err))
		redirectWith(w, r, "/", "error", msgInternal)
		return
	}

	// A new login always gets a fresh session; any previous one is dropped.
	if old, derr := h.sessions.Destroy(ctx, w, r); derr != nil {
		logRequest(ctx, "error", "Failed to drop previous session", zap.Error(derr))
	} else if old != nil {
		h.clearCart(ctx, old.ID)
	}

	sess, err := h.sessions.Start(ctx, w, *user)
	if err != nil {
		logRequest(ctx, "error", "Failed to create session", zap.Error(err))
		redirectWith(w, r, "/", "error", msgInternal)
		return
	}

	logRequest(ctx, "info", "Login successful", zap.Int64("user_id", user.ID), zap.String("session_id", sess.ID))
	http.Redirect(w, r, "/products", http.StatusFound)
}

// RegisterPage handles GET /register.
func (h *ShopHandler) RegisterPage(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if _, err := h.sessions.Load(r); err == nil {
		http.Redirect(w, r, "/products", http.StatusFound)
		return
	}
	h.render(ctx, w, views.PageRegister, views.PageData{Title: titleRegister})
}

// Register handles POST /register. It never signs the new user in.
func (h *ShopHandler) Register(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	in := services.RegisterInput{
		Name:            r.FormValue("nombre"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
	}
	logRequest(ctx, "info", "Registration attempt", zap.String("email", in.Email))

	user, err := h.auth.Register(ctx, in)
	if err != nil {
		msg, known := registerMessage(err)
		if !known {
			logRequest(ctx, "error", "Registration failed", zap.Error(err))
		} else {
			logRequest(ctx, "info", "Registration rejected", zap.String("reason", err.Error()))
		}
		h.render(ctx, w, views.PageRegister, views.PageData{Title: titleRegister, Error: msg})
		return
	}

	logRequest(ctx, "info", "User registered", zap.Int64("user_id", user.ID), zap.String("email", user.Email))
	h.render(ctx, w, views.PageRegister, views.PageData{Title: titleRegister, Success: msgRegistered})
}

func registerMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		return msgPasswordMismatch, true
	case errors.Is(err, services.ErrPasswordTooShort):
		return msgPasswordTooShort, true
	case errors.Is(err, repositories.ErrEmailTaken):
		return msgEmailTaken, true
	case errors.Is(err, services.ErrMissingFields):
		return msgMissingFields, true
	default:
		return msgInternal, false
	}
}

// Products handles GET /products.
func (h *ShopHandler) Products(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(ctx)
	products := catalog.Products()

	logRequest(ctx, "info", "Catalog served", zap.Int("count", len(products)))
	h.render(ctx, w, views.PageProducts, views.PageData{
		Title:    titleProducts,
		User:     &sess.User,
		Products: products,
	})
}

// Cart handles GET /carrito.
func (h *ShopHandler) Cart(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(ctx)

	view, err := h.carts.View(ctx, sess.ID)
	if err != nil {
		logRequest(ctx, "error", "Failed to load cart", zap.Error(err))
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}
	h.render(ctx, w, views.PageCheckout, views.PageData{
		Title: titleCart,
		User:  &sess.User,
		Cart:  view,
	})
}

// Payment handles GET /payment. No charge is ever made.
func (h *ShopHandler) Payment(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(ctx)

	view, err := h.carts.View(ctx, sess.ID)
	if err != nil {
		logRequest(ctx, "error", "Failed to load cart", zap.Error(err))
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}
	h.render(ctx, w, views.PagePayment, views.PageData{
		Title: titlePayment,
		User:  &sess.User,
		Cart:  view,
	})
}

func (h *ShopHandler) clearCart(ctx context.Context, sessionID string) {
	if err := h.carts.Clear(ctx, sessionID); err != nil {
		logRequest(ctx, "error", "Failed to clear cart", zap.Error(err), zap.String("session_id", sessionID))
	}
}
