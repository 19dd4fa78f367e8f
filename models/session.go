package models

import "time"

// SessionUser is the copy of a user kept in a session. It carries no credentials.
type SessionUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"fechaRegistro"`
}

// SessionData is the server-side record behind a session cookie.
type SessionData struct {
	ID        string      `json:"id"`
	User      SessionUser `json:"usuario"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewSessionUser copies the public fields of u.
func NewSessionUser(u User) SessionUser {
	return SessionUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// DebugResponse is the JSON body of GET /debug.
type DebugResponse struct {
	Status     string       `json:"status"`
	Users      []DebugUser  `json:"usuarios"`
	TotalUsers int          `json:"totalUsuarios"`
	Session    *SessionData `json:"sesion"`
	Cart       []CartLine   `json:"carrito"`
}
