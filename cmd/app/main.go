package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastfeet/api"
	"fastfeet/cmd"
	httpadapter "fastfeet/internal/adapters/in/http"
	"fastfeet/internal/adapters/out/postgres"
	"fastfeet/internal/adapters/out/rediscache"
	"fastfeet/internal/core/ports"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(configs)

	cache, closeCache := newRecipientCache(ctx, configs, logger)
	defer closeCache()

	app := cmd.NewCompositionRoot(configs, gormDB, cache, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, app, configs.HTTP, logger); err != nil {
		logger.Error("HTTP server stopped with error", "error", err)
	}
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	db := configs.Database

	gormDB, err := postgres.Open(postgres.Options{
		DSN:             postgres.DSN(db.Host, db.Port, db.User, db.Password, db.Name, db.SSLMode),
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

// newRecipientCache falls back to a no-op cache when Redis is not configured
// or not reachable at startup.
func newRecipientCache(ctx context.Context, configs cmd.Config, logger *slog.Logger) (ports.RecipientCache, func()) {
	if !configs.CacheEnabled() {
		logger.Info("Recipient cache disabled")
		return rediscache.NopCache{}, func() {}
	}

	cache := rediscache.New(rediscache.Options{
		Addr:     configs.Redis.Addr,
		Username: configs.Redis.Username,
		Password: configs.Redis.Password,
		DB:       configs.Redis.DB,
		TTL:      configs.Redis.TTL,
	}, logger)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := cache.Ping(pingCtx); err != nil {
		logger.Warn("Redis unreachable, recipient cache disabled", "addr", configs.Redis.Addr, "error", err)
		_ = cache.Close()
		return rediscache.NopCache{}, func() {}
	}

	logger.Info("Recipient cache enabled", "addr", configs.Redis.Addr, "ttl", configs.Redis.TTL)
	return cache, func() { _ = cache.Close() }
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.HTTPConfig, logger *slog.Logger) error {
	doc, err := api.Load()
	if err != nil {
		return err
	}

	e, err := httpadapter.NewRouter(app.CreateServer(), doc, logger)
	if err != nil {
		return err
	}

	e.Server.ReadTimeout = configs.ReadTimeout
	e.Server.WriteTimeout = configs.WriteTimeout

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", configs.Port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.Port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
