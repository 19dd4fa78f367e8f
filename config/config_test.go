package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "3000", c.Port)
	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, "memory", c.StoreDriver)
	assert.Equal(t, "memory", c.CartDriver)
	assert.Equal(t, "memory", c.CacheType)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 12, c.BcryptCost)
	assert.False(t, c.CookieSecure)
	assert.Equal(t, ":3000", c.Addr())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":          "8080",
		"APP_ENV":       "production",
		"STORE_DRIVER":  "sqlite",
		"CART_DRIVER":   "redis",
		"REDIS_DB":      "3",
		"BCRYPT_COST":   "not-a-number",
		"COOKIE_SECURE": "true",
		"SESSION_TTL":   "90m",
	}

	var c Config
	c.LoadDefaults()
	c.applyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "production", c.Environment)
	assert.Equal(t, "sqlite", c.StoreDriver)
	assert.Equal(t, "redis", c.CartDriver)
	assert.Equal(t, 3, c.RedisDB)
	assert.Equal(t, 12, c.BcryptCost, "invalid ints keep the default")
	assert.True(t, c.CookieSecure)
	assert.Equal(t, 90*time.Minute, c.SessionTTL)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "8080")

	c, err := Load([]string{"-port", "9090", "-cart", "sqlite"})
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "sqlite", c.CartDriver)
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := Load([]string{"-nope"})
	assert.Error(t, err)
}
