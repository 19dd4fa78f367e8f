package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mascotas-shop/models"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// SQLiteUserRepository stores users in the users table.
type SQLiteUserRepository struct {
	db *sqlx.DB
}

func NewSQLiteUserRepository(db *sqlx.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

func (r *SQLiteUserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	created := *u
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now()
	}

	id, err := insertUser(ctx, r.db, &created)
	if err != nil {
		return nil, err
	}
	created.ID = id
	return &created, nil
}

func (r *SQLiteUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u,
		"SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}

func (r *SQLiteUserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.db.SelectContext(ctx, &users,
		"SELECT id, name, email, password_hash, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (r *SQLiteUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}

func (r *SQLiteUserRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM users"); err != nil {
		return fmt.Errorf("clearing users: %w", err)
	}
	for i := range users {
		u := users[i]
		if u.CreatedAt.IsZero() {
			u.CreatedAt = time.Now()
		}
		if _, err := insertUser(ctx, tx, &u); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// insertUser keeps an explicit id when u has one, otherwise lets sqlite assign it.
func insertUser(ctx context.Context, ext sqlx.ExtContext, u *models.User) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if u.ID != 0 {
		res, err = ext.ExecContext(ctx,
			"INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
			u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt)
	} else {
		res, err = ext.ExecContext(ctx,
			"INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
			u.Name, u.Email, u.PasswordHash, u.CreatedAt)
	}
	if isUniqueViolation(err) {
		return 0, ErrEmailTaken
	}
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	return res.LastInsertId()
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
