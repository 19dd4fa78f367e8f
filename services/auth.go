// Package services holds the shop's account and cart logic on top of the
// repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"mascotas-shop/auth"
	"mascotas-shop/models"
	"mascotas-shop/repositories"
)

// MinPasswordLength is the shortest password Register accepts, in characters.
const MinPasswordLength = 6

// Seed account restored by Reset.
const (
	SeedUserID   int64 = 1
	SeedName           = "Usuario Demo"
	SeedEmail          = "demo@mascotas.com"
	SeedPassword       = "123456"
)

// AuthService registers users, checks credentials and resets the user table.
type AuthService struct {
	users  repositories.UserRepository
	carts  repositories.CartRepository
	hasher auth.Hasher
	now    func() time.Time
}

func NewAuthService(users repositories.UserRepository, carts repositories.CartRepository, hasher auth.Hasher) *AuthService {
	return &AuthService{
		users:  users,
		carts:  carts,
		hasher: hasher,
		now:    time.Now,
	}
}

// RegisterInput is the data collected by the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Login returns the user whose email and password match. Emails are
// compared exactly.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return u, nil
}

// Register validates in and stores a new user. Checks run in this order:
// password confirmation, password length, email uniqueness, required fields.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	name := strings.TrimSpace(in.Name)
	email := in.Email

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, repositories.ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}
	if name == "" || strings.TrimSpace(email) == "" {
		return nil, ErrMissingFields
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	// Create re-checks uniqueness atomically.
	return s.users.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
}

// Users returns every registered user.
func (s *AuthService) Users(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Seed stores the demo account as the only user.
func (s *AuthService) Seed(ctx context.Context) error {
	hash, err := s.hasher.Hash(SeedPassword)
	if err != nil {
		return err
	}
	seed := models.User{
		ID:           SeedUserID,
		Name:         SeedName,
		Email:        SeedEmail,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.users.ReplaceAll(ctx, []models.User{seed}); err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	return nil
}

// Reset discards every registration and cart, leaving only the seed account.
func (s *AuthService) Reset(ctx context.Context) error {
	if err := s.Seed(ctx); err != nil {
		return err
	}
	if err := s.carts.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing carts: %w", err)
	}
	return nil
}
