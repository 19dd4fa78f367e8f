// Package session ties the session_id cookie to a server-side session record.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mascotas-shop/models"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session id.
const CookieName = "session_id"

// Manager creates, loads and destroys sessions.
type Manager struct {
	store  Store
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(store Store, ttl time.Duration, secure bool) *Manager {
	return &Manager{store: store, ttl: ttl, secure: secure, now: time.Now}
}

// genSessionID generates a unique session id for cookies.
func genSessionID() string {
	return uuid.New().String()
}

// Start creates a session for u and sets its cookie on w.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, u models.User) (*models.SessionData, error) {
	data := models.SessionData{
		ID:        genSessionID(),
		User:      models.NewSessionUser(u),
		CreatedAt: m.now(),
	}
	if err := m.store.Save(ctx, data, m.ttl); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    data.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl.Seconds()),
	})
	return &data, nil
}

// Load returns the session named by r's cookie, or ErrSessionNotFound.
func (m *Manager) Load(r *http.Request) (*models.SessionData, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrSessionNotFound
	}
	return m.store.Load(r.Context(), cookie.Value)
}

// Destroy removes r's session, if any, and expires the cookie. It returns the
// destroyed session, nil when there was none.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.SessionData, error) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		MaxAge:   -1,
	})

	data, err := m.Load(r)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		// Unreadable record: still try to drop it by id.
		if cookie, cerr := r.Cookie(CookieName); cerr == nil {
			return nil, errors.Join(err, m.store.Delete(ctx, cookie.Value))
		}
		return nil, err
	}
	if err := m.store.Delete(ctx, data.ID); err != nil {
		return data, err
	}
	return data, nil
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying data.
func NewContext(ctx context.Context, data *models.SessionData) context.Context {
	return context.WithValue(ctx, ctxKey{}, data)
}

// FromContext returns the session stored by NewContext.
func FromContext(ctx context.Context) (*models.SessionData, bool) {
	data, ok := ctx.Value(ctxKey{}).(*models.SessionData)
	return data, ok && data != nil
}
