package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "fundrik/internal/adapter/http"
	"fundrik/internal/adapter/hookmapper"
	"fundrik/internal/adapter/listener"
	"fundrik/internal/adapter/postgres"
	"fundrik/internal/adapter/usecase"
	"fundrik/internal/config"
	"fundrik/internal/core/dto"
	"fundrik/internal/db"
	"fundrik/internal/event"
	"fundrik/internal/platform"
	"fundrik/internal/platform/hook"
)

// main is the entry point of the fundrik campaign service. It loads
// configuration, optionally runs database migrations, initializes the
// database pool and repositories, wires the hook bridge and starts the
// HTTP server. On receiving a termination signal it gracefully shuts
// down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load .env when present, then configuration from the environment.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	factory := dto.NewFactory()
	exec := postgres.NewQueryExecutor(pool)
	repo := postgres.NewCampaignRepository(exec, factory)
	svc := usecase.NewCampaignService(repo, factory)

	// Platform bridge: hook bus → mappers → typed events → listeners.
	registry := platform.NewRegistry()
	platformCtx := platform.NewCachedContextProvider(registry)
	events := event.NewDispatcher()

	listener.NewRegistry().
		Add(event.NamePlatformInitialized, listener.NewInitListener(registry, logger)).
		Add(event.NameCampaignPostSynced, listener.NewSyncListener(svc, logger)).
		Add(event.NameCampaignPostDeleted, listener.NewDeleteListener(svc, logger)).
		Add(event.NamePreInsertCampaignFilter, listener.NewPreInsertListener(svc)).
		Add(event.NameAllowedBlockTypesFilter, listener.NewBlockTypesListener()).
		RegisterAll(events)

	hooks := hook.NewDispatcher()
	hookmapper.NewRegistry(
		hookmapper.NewInitMapper(events, platformCtx, logger),
		hookmapper.NewSavePostMapper(events, platformCtx, logger),
		hookmapper.NewDeletePostMapper(events, platformCtx, logger),
		hookmapper.NewPreInsertMapper(events, platformCtx, logger),
		hookmapper.NewAllowedBlockTypesMapper(events, platformCtx, logger),
	).RegisterAll(hooks)

	// Fire the init lifecycle so the campaign post type and blocks are
	// registered before the server accepts traffic.
	hooks.DoAction(hookmapper.HookInit)
	platformCtx.Reset()

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
