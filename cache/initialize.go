package cache

import (
	"os"

	"mascotas-shop/config"

	"github.com/umakantv/go-utils/cache"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// InitializeCache opens the session cache selected by cfg.CacheType.
func InitializeCache(cfg *config.Config) cache.Cache {
	c, err := cache.New(cache.Config{
		Type:          cfg.CacheType,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Error("Failed to initialize cache:", zap.Error(err), zap.String("type", cfg.CacheType))
		os.Exit(1)
	}
	logger.Info("Session cache initialized", zap.String("type", cfg.CacheType))
	return c
}
