package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"mascotas-shop/session"
	"mascotas-shop/views"

	logger "github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// HandlerFunc is the signature of every shop handler. ctx carries the route
// metadata and, on protected routes, the session.
type HandlerFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request)

// RouteInfo describes the route a request matched.
type RouteInfo struct {
	Name   string
	Method string
	Path   string
}

type routeKey struct{}

// WithRoute returns a copy of ctx carrying info.
func WithRoute(ctx context.Context, info RouteInfo) context.Context {
	return context.WithValue(ctx, routeKey{}, info)
}

func routeFrom(ctx context.Context) RouteInfo {
	info, _ := ctx.Value(routeKey{}).(RouteInfo)
	return info
}

// logRequest logs msg prefixed with timestamp, route name, method, path and,
// when a session is present, the shopper's email.
func logRequest(ctx context.Context, level string, message string, fields ...zap.Field) {
	route := routeFrom(ctx)

	logMsg := time.Now().Format("2006-01-02 15:04:05") + " - " + route.Name + " - " + route.Method + " - " + route.Path
	if sess, ok := session.FromContext(ctx); ok {
		logMsg += " - user:" + sess.User.Email
	}
	if message != "" {
		logMsg += " - " + message
	}

	allFields := append([]zap.Field{
		zap.String("route", route.Name),
		zap.String("method", route.Method),
		zap.String("path", route.Path),
	}, fields...)

	switch level {
	case "info":
		logger.Info(logMsg, allFields...)
	case "error":
		logger.Error(logMsg, allFields...)
	case "debug":
		logger.Debug(logMsg, allFields...)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// redirectWith redirects to path with a single query message, e.g. /?error=...
func redirectWith(w http.ResponseWriter, r *http.Request, path, key, message string) {
	target := path
	if message != "" {
		target += "?" + url.Values{key: {message}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *ShopHandler) render(ctx context.Context, w http.ResponseWriter, page string, data views.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Render(w, page, data); err != nil {
		logRequest(ctx, "error", "Failed to render page", zap.String("page", page), zap.Error(err))
		http.Error(w, "Error interno", http.StatusInternalServerError)
	}
}
