package repositories

import (
	"context"
	"sync"
	"time"

	"mascotas-shop/models"
)

// MemoryUserRepository keeps users in process memory.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	lastID int64
	now    func() time.Time
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{now: time.Now}
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, ErrEmailTaken
		}
	}

	created := *u
	if created.ID == 0 {
		created.ID = r.nextID()
	} else if created.ID > r.lastID {
		r.lastID = created.ID
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = r.now()
	}
	r.users = append(r.users, created)
	return &created, nil
}

// nextID derives an id from the wall clock in milliseconds, bumped past the
// last issued id so two registrations in the same millisecond never collide.
// Caller holds r.mu.
func (r *MemoryUserRepository) nextID() int64 {
	id := r.now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemoryUserRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *MemoryUserRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(users))
	for _, u := range users {
		if _, dup := seen[u.Email]; dup {
			return ErrEmailTaken
		}
		seen[u.Email] = struct{}{}
	}

	r.users = r.users[:0:0]
	r.lastID = 0
	for _, u := range users {
		if u.ID == 0 {
			u.ID = r.nextID()
		} else if u.ID > r.lastID {
			r.lastID = u.ID
		}
		r.users = append(r.users, u)
	}
	return nil
}
