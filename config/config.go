// Package config holds runtime settings for the shop service. Values are
// applied in order: defaults, environment variables, command-line flags.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings for the shop service.
type Config struct {
	// Command is the action main dispatches on; only "start" is defined.
	Command string

	Port        string
	Environment string
	ServiceName string

	// StoreDriver selects the user repository backend: "memory" or "sqlite".
	StoreDriver string
	DatabaseDSN string

	// CartDriver selects the cart repository backend: "memory", "sqlite" or "redis".
	CartDriver string

	// CacheType selects the session cache backend: "memory" or "redis".
	CacheType     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionTTL   time.Duration
	CookieSecure bool
	BcryptCost   int
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Command = "start"
	c.Port = "3000"
	c.Environment = "development"
	c.ServiceName = "mascotas-shop"
	c.StoreDriver = "memory"
	c.DatabaseDSN = "file:mascotas?mode=memory&cache=shared"
	c.CartDriver = "memory"
	c.CacheType = "memory"
	c.RedisAddr = "localhost:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.SessionTTL = 24 * time.Hour
	c.CookieSecure = false
	c.BcryptCost = 12
}

// Load builds a Config from defaults, the environment and args (usually
// os.Args[1:]).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.applyEnv(os.Getenv)
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) applyEnv(getenv func(string) string) {
	readString(getenv, "PORT", &c.Port)
	readString(getenv, "APP_ENV", &c.Environment)
	readString(getenv, "STORE_DRIVER", &c.StoreDriver)
	readString(getenv, "DATABASE_DSN", &c.DatabaseDSN)
	readString(getenv, "CART_DRIVER", &c.CartDriver)
	readString(getenv, "CACHE_TYPE", &c.CacheType)
	readString(getenv, "REDIS_ADDR", &c.RedisAddr)
	readString(getenv, "REDIS_PASSWORD", &c.RedisPassword)
	readInt(getenv, "REDIS_DB", &c.RedisDB)
	readInt(getenv, "BCRYPT_COST", &c.BcryptCost)
	readBool(getenv, "COOKIE_SECURE", &c.CookieSecure)

	if raw := getenv("SESSION_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			c.SessionTTL = d
		}
	}
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("mascotas-shop", flag.ContinueOnError)
	fs.StringVar(&c.Command, "command", c.Command, "command to run")
	fs.StringVar(&c.Port, "port", c.Port, "HTTP listen port")
	fs.StringVar(&c.Environment, "env", c.Environment, "environment name shown in logs")
	fs.StringVar(&c.StoreDriver, "store", c.StoreDriver, "user store driver (memory|sqlite)")
	fs.StringVar(&c.DatabaseDSN, "dsn", c.DatabaseDSN, "sqlite DSN")
	fs.StringVar(&c.CartDriver, "cart", c.CartDriver, "cart store driver (memory|sqlite|redis)")
	fs.StringVar(&c.CacheType, "cache", c.CacheType, "session cache type (memory|redis)")
	fs.StringVar(&c.RedisAddr, "redis-addr", c.RedisAddr, "redis address")
	fs.DurationVar(&c.SessionTTL, "session-ttl", c.SessionTTL, "session lifetime")
	fs.BoolVar(&c.CookieSecure, "cookie-secure", c.CookieSecure, "mark the session cookie Secure")
	return fs.Parse(args)
}

func readString(getenv func(string) string, key string, dst *string) {
	if v := getenv(key); v != "" {
		*dst = v
	}
}

func readInt(getenv func(string) string, key string, dst *int) {
	raw := getenv(key)
	if raw == "" {
		return
	}
	if v, err := strconv.Atoi(raw); err == nil {
		*dst = v
	}
}

func readBool(getenv func(string) string, key string, dst *bool) {
	raw := getenv(key)
	if raw == "" {
		return
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		*dst = v
	}
}
