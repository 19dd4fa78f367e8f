package server

import (
	"net/http"

	"mascotas-shop/handlers"
	"mascotas-shop/views"

	"github.com/gorilla/mux"
)

// Route describes one endpoint. AuthType is one of the handlers.Auth*
// constants; LoginError is the ?error= message used when a session-gated HTML
// route redirects to the login view.
type Route struct {
	Name       string
	Method     string
	Path       string
	AuthType   string
	LoginError string
}

type routeEntry struct {
	Route
	handler handlers.HandlerFunc
}

func shopRoutes(h *handlers.ShopHandler) []routeEntry {
	return []routeEntry{
		{Route{Name: "HealthCheck", Method: http.MethodGet, Path: "/health", AuthType: handlers.AuthNone}, h.Health},
		{Route{Name: "LoginPage", Method: http.MethodGet, Path: "/", AuthType: handlers.AuthNone}, h.LoginPage},
		{Route{Name: "Login", Method: http.MethodPost, Path: "/login", AuthType: handlers.AuthNone}, h.Login},
		{Route{Name: "RegisterPage", Method: http.MethodGet, Path: "/register", AuthType: handlers.AuthNone}, h.RegisterPage},
		{Route{Name: "Register", Method: http.MethodPost, Path: "/register", AuthType: handlers.AuthNone}, h.Register},
		{Route{Name: "Products", Method: http.MethodGet, Path: "/products", AuthType: handlers.AuthSession, LoginError: handlers.LoginRequiredMessage}, h.Products},
		{Route{Name: "AddToCart", Method: http.MethodPost, Path: "/agregar-carrito", AuthType: handlers.AuthSessionJSON}, h.AddToCart},
		{Route{Name: "Cart", Method: http.MethodGet, Path: "/carrito", AuthType: handlers.AuthSession}, h.Cart},
		{Route{Name: "Payment", Method: http.MethodGet, Path: "/payment", AuthType: handlers.AuthSession}, h.Payment},
		{Route{Name: "Logout", Method: http.MethodGet, Path: "/logout", AuthType: handlers.AuthNone}, h.Logout},
		{Route{Name: "Debug", Method: http.MethodGet, Path: "/debug", AuthType: handlers.AuthNone}, h.Debug},
		{Route{Name: "Reset", Method: http.MethodGet, Path: "/reset", AuthType: handlers.AuthNone}, h.Reset},
	}
}

// NewRouter registers every shop route plus the embedded static files.
func NewRouter(h *handlers.ShopHandler) *mux.Router {
	router := mux.NewRouter()
	for _, entry := range shopRoutes(h) {
		register(router, h, entry)
	}
	router.PathPrefix("/static/").
		Handler(http.StripPrefix("/static/", http.FileServer(http.FS(views.Static())))).
		Methods(http.MethodGet)
	return router
}

func register(router *mux.Router, h *handlers.ShopHandler, entry routeEntry) {
	info := handlers.RouteInfo{Name: entry.Name, Method: entry.Method, Path: entry.Path}
	gated := h.RequireSession(entry.AuthType, entry.LoginError, entry.handler)

	router.Methods(entry.Method).
		Path(entry.Path).
		Name(entry.Name).
		HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := handlers.WithRoute(r.Context(), info)
			gated(ctx, w, r.WithContext(ctx))
		})
}
