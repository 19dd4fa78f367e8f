package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mascotas-shop/models"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// RedisCartRepository stores each cart as a redis list of JSON lines under
// "cart:<session id>". Every append pushes the key's expiry out to ttl, so a
// cart outlives its session by at most one session lifetime.
type RedisCartRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCartRepository returns a repository over rdb. A ttl <= 0 keeps carts
// until they are deleted.
func NewRedisCartRepository(rdb *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{rdb: rdb, ttl: ttl}
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func (r *RedisCartRepository) Append(ctx context.Context, sessionID string, line models.CartLine) (int, error) {
	data, err := json.Marshal(line)
	if err != nil {
		return 0, fmt.Errorf("encoding cart line: %w", err)
	}
	key := cartKey(sessionID)
	pipe := r.rdb.TxPipeline()
	push := pipe.RPush(ctx, key, data)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("pushing cart line: %w", err)
	}
	return int(push.Val()), nil
}

func (r *RedisCartRepository) List(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	raw, err := r.rdb.LRange(ctx, cartKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading cart: %w", err)
	}
	return decodeCartLines(raw)
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("deleting cart: %w", err)
	}
	return nil
}

func (r *RedisCartRepository) DeleteAll(ctx context.Context) error {
	iter := r.rdb.Scan(ctx, 0, cartKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("deleting cart: %w", err)
		}
	}
	return iter.Err()
}

func decodeCartLines(raw []string) ([]models.CartLine, error) {
	lines := make([]models.CartLine, 0, len(raw))
	for _, item := range raw {
		var line models.CartLine
		if err := json.Unmarshal([]byte(item), &line); err != nil {
			return nil, fmt.Errorf("decoding cart line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}
