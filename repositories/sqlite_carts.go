package repositories

import (
	"context"
	"fmt"

	"mascotas-shop/models"

	"github.com/jmoiron/sqlx"
)

// SQLiteCartRepository stores cart lines in the cart_lines table.
type SQLiteCartRepository struct {
	db *sqlx.DB
}

func NewSQLiteCartRepository(db *sqlx.DB) *SQLiteCartRepository {
	return &SQLiteCartRepository{db: db}
}

func (r *SQLiteCartRepository) Append(ctx context.Context, sessionID string, line models.CartLine) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO cart_lines (session_id, product_id, quantity, user_id, added_at) VALUES (?, ?, ?, ?, ?)",
		sessionID, line.ProductID, line.Quantity, line.UserID, line.AddedAt)
	if err != nil {
		return 0, fmt.Errorf("inserting cart line: %w", err)
	}

	var n int
	if err := tx.GetContext(ctx, &n, "SELECT COUNT(*) FROM cart_lines WHERE session_id = ?", sessionID); err != nil {
		return 0, fmt.Errorf("counting cart lines: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

func (r *SQLiteCartRepository) List(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	err := r.db.SelectContext(ctx, &lines,
		"SELECT product_id, quantity, user_id, added_at FROM cart_lines WHERE session_id = ? ORDER BY id", sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing cart lines: %w", err)
	}
	return lines, nil
}

func (r *SQLiteCartRepository) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM cart_lines WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("deleting cart: %w", err)
	}
	return nil
}

func (r *SQLiteCartRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM cart_lines"); err != nil {
		return fmt.Errorf("deleting carts: %w", err)
	}
	return nil
}
