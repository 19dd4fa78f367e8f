package repositories

import (
	"context"
	"sync"

	"mascotas-shop/models"
)

// MemoryCartRepository keeps carts in process memory.
type MemoryCartRepository struct {
	mu    sync.Mutex
	carts map[string][]models.CartLine
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string][]models.CartLine)}
}

func (r *MemoryCartRepository) Append(ctx context.Context, sessionID string, line models.CartLine) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[sessionID] = append(r.carts[sessionID], line)
	return len(r.carts[sessionID]), nil
}

func (r *MemoryCartRepository) List(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[sessionID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (r *MemoryCartRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}

func (r *MemoryCartRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts = make(map[string][]models.CartLine)
	return nil
}
