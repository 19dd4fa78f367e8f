package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mascotas-shop/config"
	"mascotas-shop/telemetry"

	"github.com/umakantv/go-utils/logger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// StartServer wires the shop from cfg and serves it until SIGINT or SIGTERM.
// It returns when the server stops; setup and listen failures are returned.
func StartServer(cfg *config.Config) error {
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})

	logger.Info("Starting Mascotas L&C shop...", zap.String("env", cfg.Environment))

	shutdownTelemetry := telemetry.Setup(cfg.ServiceName, cfg.Environment)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			logger.Error("Telemetry shutdown error", zap.Error(err))
		}
	}()

	app, err := NewApp(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("initializing shop: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Error closing stores", zap.Error(err))
		}
	}()

	router := NewRouter(app.Handler)
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      otelhttp.NewHandler(router, cfg.ServiceName),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Shop started", zap.String("url", "http://localhost"+cfg.Addr()), zap.String("env", cfg.Environment))
	logger.Info("Demo user: demo@mascotas.com / 123456")
	for _, entry := range shopRoutes(app.Handler) {
		logger.Info("Route", zap.String("method", entry.Method), zap.String("path", entry.Path), zap.String("auth", entry.AuthType))
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("serving on %s: %w", cfg.Addr(), err)
		}
		return nil
	case sig := <-stop:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
