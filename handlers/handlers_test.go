package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"mascotas-shop/models"
	"mascotas-shop/repositories"
	"mascotas-shop/services"
	"mascotas-shop/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umakantv/go-utils/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})
	os.Exit(m.Run())
}

type stubStore struct {
	sessions map[string]models.SessionData
	loadErr  error
}

func (s *stubStore) Save(ctx context.Context, d models.SessionData, ttl time.Duration) error {
	s.sessions[d.ID] = d
	return nil
}

func (s *stubStore) Load(ctx context.Context, id string) (*models.SessionData, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	d, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return &d, nil
}

func (s *stubStore) Delete(ctx context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func gatedHandler(store *stubStore) *ShopHandler {
	return &ShopHandler{sessions: session.NewManager(store, time.Hour, false)}
}

func TestRequireSession(t *testing.T) {
	store := &stubStore{sessions: map[string]models.SessionData{
		"abc": {ID: "abc", User: models.SessionUser{ID: 1, Email: "demo@mascotas.com"}},
	}}
	h := gatedHandler(store)

	var seen *models.SessionData
	next := func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		seen, _ = session.FromContext(ctx)
		w.WriteHeader(http.StatusNoContent)
	}

	t.Run("session present", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "abc"})
		rec := httptest.NewRecorder()

		h.RequireSession(AuthSession, msgLoginRequired, next)(req.Context(), rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "demo@mascotas.com", seen.User.Email)
	})

	t.Run("html redirect", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		rec := httptest.NewRecorder()

		h.RequireSession(AuthSession, msgLoginRequired, next)(req.Context(), rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/?"+url.Values{"error": {msgLoginRequired}}.Encode(), rec.Header().Get("Location"))
		assert.Nil(t, seen)
	})

	t.Run("html redirect without message", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/carrito", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "gone"})
		rec := httptest.NewRecorder()

		h.RequireSession(AuthSession, "", next)(req.Context(), rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("json unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/agregar-carrito", nil)
		rec := httptest.NewRecorder()

		h.RequireSession(AuthSessionJSON, "", next)(req.Context(), rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"No autenticado"}`, rec.Body.String())
	})

	t.Run("open route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/debug", nil)
		rec := httptest.NewRecorder()

		h.RequireSession(AuthNone, "", next)(req.Context(), rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRequireSessionStoreFailure(t *testing.T) {
	store := &stubStore{sessions: map[string]models.SessionData{}, loadErr: errors.New("cache down")}
	h := gatedHandler(store)
	next := func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not run")
	}

	req := httptest.NewRequest(http.MethodPost, "/agregar-carrito", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "abc"})
	rec := httptest.NewRecorder()
	h.RequireSession(AuthSessionJSON, "", next)(req.Context(), rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "abc"})
	rec = httptest.NewRecorder()
	h.RequireSession(AuthSession, msgLoginRequired, next)(req.Context(), rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestReadAddInput(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantProduct string
		wantQty     string
		wantErr     bool
	}{
		{"json numbers", "application/json", `{"productoId": 3, "cantidad": 2}`, `3`, `2`, false},
		{"json strings", "application/json; charset=utf-8", `{"productoId": "3", "cantidad": "dos"}`, `"3"`, `"dos"`, false},
		{"json missing quantity", "application/json", `{"productoId": 7}`, `7`, ``, false},
		{"json object value", "application/json", `{"productoId": {"id": 1}}`, `{"id": 1}`, ``, false},
		{"json fraction", "application/json", `{"productoId": 1, "cantidad": 2.5}`, `1`, `2.5`, false},
		{"json empty body", "application/json", ``, ``, ``, false},
		{"json malformed", "application/json", `{"productoId"`, ``, ``, true},
		{"json array", "application/json", `[1, 2]`, ``, ``, true},
		{"form", "application/x-www-form-urlencoded", "productoId=4&cantidad=5", `"4"`, `"5"`, false},
		{"form blank quantity", "application/x-www-form-urlencoded", "productoId=4&cantidad=", `"4"`, `""`, false},
		{"no body", "", "", ``, ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/agregar-carrito", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			got, err := readAddInput(req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProduct, string(got.ProductID))
			assert.Equal(t, tt.wantQty, string(got.Quantity))
		})
	}
}

func TestRegisterMessage(t *testing.T) {
	tests := []struct {
		err   error
		msg   string
		known bool
	}{
		{services.ErrPasswordMismatch, msgPasswordMismatch, true},
		{services.ErrPasswordTooShort, msgPasswordTooShort, true},
		{fmt.Errorf("creating user: %w", repositories.ErrEmailTaken), msgEmailTaken, true},
		{services.ErrMissingFields, msgMissingFields, true},
		{errors.New("disk full"), msgInternal, false},
	}
	for _, tt := range tests {
		msg, known := registerMessage(tt.err)
		assert.Equal(t, tt.msg, msg, tt.err.Error())
		assert.Equal(t, tt.known, known, tt.err.Error())
	}
}

func TestRedirectWith(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reset", nil)
	rec := httptest.NewRecorder()

	redirectWith(rec, req, "/", "success", msgResetDone)

	assert.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, msgResetDone, loc.Query().Get("success"))
}
