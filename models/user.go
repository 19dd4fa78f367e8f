package models

import "time"

// User represents a registered shop customer.
// PasswordHash is never returned in JSON responses.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"nombre" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"fechaRegistro" db:"created_at"`
}

// DebugUser is a user as exposed by GET /debug, with the password masked.
type DebugUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"fechaRegistro"`
}

// MaskedPassword replaces every password in debug output.
const MaskedPassword = "***"

// Masked returns the debug view of u.
func (u User) Masked() DebugUser {
	return DebugUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  MaskedPassword,
		CreatedAt: u.CreatedAt,
	}
}
