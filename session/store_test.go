package session

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"mascotas-shop/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umakantv/go-utils/cache"
)

func cacheBackends(t *testing.T) map[string]cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)

	mem, err := cache.New(cache.Config{Type: "memory"})
	require.NoError(t, err)
	rc, err := cache.New(cache.Config{Type: "redis", RedisAddr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() {
		mem.Close()
		rc.Close()
	})

	return map[string]cache.Cache{"memory": mem, "redis": rc}
}

func TestCacheStore_RoundTrip(t *testing.T) {
	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	data := models.SessionData{
		ID:        "abc",
		User:      models.NewSessionUser(demo),
		CreatedAt: created,
	}

	for name, c := range cacheBackends(t) {
		t.Run(name, func(t *testing.T) {
			store := NewCacheStore(c)
			ctx := context.Background()

			require.NoError(t, store.Save(ctx, data, time.Hour))

			got, err := store.Load(ctx, "abc")
			require.NoError(t, err)
			assert.Equal(t, "abc", got.ID)
			assert.Equal(t, demo.ID, got.User.ID)
			assert.Equal(t, demo.Name, got.User.Name)
			assert.Equal(t, demo.Email, got.User.Email)
			assert.True(t, created.Equal(got.CreatedAt))

			require.NoError(t, store.Delete(ctx, "abc"))
			_, err = store.Load(ctx, "abc")
			assert.ErrorIs(t, err, ErrSessionNotFound)
		})
	}
}

func TestCacheStore_UnknownID(t *testing.T) {
	for name, c := range cacheBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := NewCacheStore(c).Load(context.Background(), "missing")
			assert.ErrorIs(t, err, ErrSessionNotFound)
		})
	}
}

func TestCacheStore_RedisTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rc, err := cache.New(cache.Config{Type: "redis", RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer rc.Close()

	store := NewCacheStore(rc)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, models.SessionData{ID: "abc"}, 10*time.Minute))
	assert.Equal(t, 10*time.Minute, mr.TTL("session:abc"))

	mr.FastForward(11 * time.Minute)
	_, err = store.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_OverRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rc, err := cache.New(cache.Config{Type: "redis", RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer rc.Close()

	m := NewManager(NewCacheStore(rc), time.Hour, false)
	rec := httptest.NewRecorder()
	started, err := m.Start(context.Background(), rec, demo)
	require.NoError(t, err)

	loaded, err := m.Load(requestWithCookies(rec.Result().Cookies()))
	require.NoError(t, err)
	assert.Equal(t, started.ID, loaded.ID)
	assert.Equal(t, demo.Email, loaded.User.Email)
}

type failingCache struct {
	err error
}

func (f failingCache) Set(key string, value interface{}, ttl time.Duration) error { return f.err }
func (f failingCache) Get(key string) (interface{}, error)                        { return nil, f.err }
func (f failingCache) Delete(key string) error                                    { return f.err }
func (f failingCache) Exists(key string) bool                                     { return false }
func (f failingCache) Close() error                                               { return nil }

func TestCacheStore_ReportsCacheErrors(t *testing.T) {
	down := errors.New("redis down")
	store := NewCacheStore(failingCache{err: down})
	ctx := context.Background()

	err := store.Save(ctx, models.SessionData{ID: "abc"}, time.Hour)
	assert.ErrorIs(t, err, down)

	_, err = store.Load(ctx, "abc")
	assert.ErrorIs(t, err, down)
	assert.NotErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "abc"), down)
}

func TestManager_StartFailsWhenCacheFails(t *testing.T) {
	m := NewManager(NewCacheStore(failingCache{err: errors.New("redis down")}), time.Hour, false)
	rec := httptest.NewRecorder()

	_, err := m.Start(context.Background(), rec, demo)
	assert.Error(t, err)
	assert.Empty(t, rec.Result().Cookies(), "no cookie for a session that was never stored")
}
