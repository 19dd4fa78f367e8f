// Package repositories stores users and carts behind interfaces so the HTTP
// layer never touches a concrete backend.
package repositories

import (
	"context"
	"errors"

	"mascotas-shop/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// UserRepository stores registered users. Create enforces email uniqueness.
type UserRepository interface {
	// Create assigns an ID to u when it has none and stores it.
	Create(ctx context.Context, u *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List returns users in insertion order.
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
	// ReplaceAll discards every user and stores users in their place.
	ReplaceAll(ctx context.Context, users []models.User) error
}

// CartRepository stores cart lines keyed by session id.
type CartRepository interface {
	// Append adds line to the session's cart and returns the new line count.
	Append(ctx context.Context, sessionID string, line models.CartLine) (int, error)
	// List returns the session's lines in insertion order; empty when none.
	List(ctx context.Context, sessionID string) ([]models.CartLine, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteAll(ctx context.Context) error
}
