package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mascotas-shop/models"

	"github.com/umakantv/go-utils/cache"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "session:"

// Store persists session records by id.
type Store interface {
	Save(ctx context.Context, data models.SessionData, ttl time.Duration) error
	Load(ctx context.Context, id string) (*models.SessionData, error)
	Delete(ctx context.Context, id string) error
}

// CacheStore keeps sessions in a go-utils cache (memory or redis). The
// memory cache hands back the stored value, the redis cache a decoded JSON
// object.
type CacheStore struct {
	cache cache.Cache
}

func NewCacheStore(c cache.Cache) *CacheStore {
	return &CacheStore{cache: c}
}

func (s *CacheStore) Save(ctx context.Context, data models.SessionData, ttl time.Duration) error {
	if err := s.cache.Set(sessionKeyPrefix+data.ID, data, ttl); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

func (s *CacheStore) Load(ctx context.Context, id string) (*models.SessionData, error) {
	cached, err := s.cache.Get(sessionKeyPrefix + id)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	return decode(cached)
}

func (s *CacheStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(sessionKeyPrefix + id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func decode(cached interface{}) (*models.SessionData, error) {
	switch v := cached.(type) {
	case nil:
		return nil, ErrSessionNotFound
	case models.SessionData:
		return &v, nil
	case *models.SessionData:
		if v == nil {
			return nil, ErrSessionNotFound
		}
		data := *v
		return &data, nil
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return nil, fmt.Errorf("re-encoding session: %w", err)
	}
	var data models.SessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &data, nil
}
