package database

import (
	"context"
	"fmt"
	"time"

	"mascotas-shop/config"

	"github.com/redis/go-redis/v9"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// ConnectRedis opens the redis client backing the redis cart store and checks
// it answers PING.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("Redis connection successfully opened", zap.String("addr", cfg.RedisAddr))
	return rdb, nil
}
