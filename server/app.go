package server

import (
	"context"
	"fmt"

	"mascotas-shop/auth"
	cachepackage "mascotas-shop/cache"
	"mascotas-shop/config"
	"mascotas-shop/database"
	"mascotas-shop/handlers"
	"mascotas-shop/repositories"
	"mascotas-shop/services"
	"mascotas-shop/session"
	"mascotas-shop/views"

	"github.com/jmoiron/sqlx"
)

// App is the wired shop: stores, services and the HTTP handler.
type App struct {
	Handler *handlers.ShopHandler
	Auth    *services.AuthService
	closers []func() error
}

// Close releases every connection the app opened.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Stores groups the backends an App runs on.
type Stores struct {
	Users    repositories.UserRepository
	Carts    repositories.CartRepository
	Sessions session.Store
}

// NewApp builds the backends selected by cfg and wires them with NewAppWithStores.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	var closers []func() error
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var dbConn *sqlx.DB
	if cfg.StoreDriver == "sqlite" || cfg.CartDriver == "sqlite" {
		dbConn = database.InitializeDatabase(cfg)
		closers = append(closers, dbConn.Close)
	}

	var users repositories.UserRepository
	switch cfg.StoreDriver {
	case "memory":
		users = repositories.NewMemoryUserRepository()
	case "sqlite":
		users = repositories.NewSQLiteUserRepository(dbConn)
	default:
		closeAll()
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	var carts repositories.CartRepository
	switch cfg.CartDriver {
	case "memory":
		carts = repositories.NewMemoryCartRepository()
	case "sqlite":
		carts = repositories.NewSQLiteCartRepository(dbConn)
	case "redis":
		rdb, err := database.ConnectRedis(ctx, cfg)
		if err != nil {
			closeAll()
			return nil, err
		}
		closers = append(closers, rdb.Close)
		carts = repositories.NewRedisCartRepository(rdb, cfg.SessionTTL)
	default:
		closeAll()
		return nil, fmt.Errorf("unknown cart driver %q", cfg.CartDriver)
	}

	sessionCache := cachepackage.InitializeCache(cfg)
	closers = append(closers, func() error {
		sessionCache.Close()
		return nil
	})

	app, err := NewAppWithStores(ctx, cfg, Stores{
		Users:    users,
		Carts:    carts,
		Sessions: session.NewCacheStore(sessionCache),
	})
	if err != nil {
		closeAll()
		return nil, err
	}
	app.closers = closers
	return app, nil
}

// NewAppWithStores wires services and handlers over the given stores and
// seeds the demo account.
func NewAppWithStores(ctx context.Context, cfg *config.Config, stores Stores) (*App, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(stores.Users, stores.Carts, auth.NewBcryptHasher(cfg.BcryptCost))
	if err := authService.Seed(ctx); err != nil {
		return nil, err
	}

	sessions := session.NewManager(stores.Sessions, cfg.SessionTTL, cfg.CookieSecure)
	cartService := services.NewCartService(stores.Carts)

	return &App{
		Handler: handlers.NewShopHandler(authService, cartService, sessions, renderer, cfg.ServiceName),
		Auth:    authService,
	}, nil
}
