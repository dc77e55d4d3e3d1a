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

	"starseed-server/internal/galaxy"
	"starseed-server/internal/middleware"
	"starseed-server/internal/planet"
	"starseed-server/internal/server"
	"starseed-server/internal/shared/config"
	"starseed-server/internal/shared/database"
	"starseed-server/internal/shared/logger"
	"starseed-server/internal/shared/redis"
	"starseed-server/internal/shared/telemetry"
	"starseed-server/internal/system"
	"starseed-server/internal/universe"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.GlobalConfig); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := slog.With("component", "main")

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("Failed to flush traces", "error", err)
		}
	}()

	catalog, db, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	profile, err := galaxy.ProfileByName(cfg.Generation.StarProfile)
	if err != nil {
		return err
	}

	galaxyService := galaxy.NewService(catalog, profile, slog.With("component", "galaxy_service"))
	planetService := planet.NewService(slog.With("component", "planet_service"))
	systemService := system.NewService(planetService, slog.With("component", "system_service"))
	universeService := universe.NewService(galaxyService, systemService, planetService, slog.With("component", "universe_service"))
	log.Info("Services initialized", "star_profile", profile.Name(), "catalog", catalog.Backend())

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	if redisClient != nil {
		rateLimiter = middleware.NewRedisRateLimiter(cfg.RateLimit, redisClient.Client)
	}

	routes := server.NewRoutes(cfg, db, redisClient, catalog, galaxyService, universeService, slog.With("component", "handlers"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      routes.Handler(rateLimiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

// openCatalog returns the galaxy catalog selected by DB_DRIVER, seeded with
// the default galaxy. The returned DB is nil for the memory catalog.
func openCatalog(ctx context.Context, cfg *config.Config) (galaxy.Catalog, *database.DB, error) {
	if cfg.Database.Driver == database.DriverMemory {
		return galaxy.NewMemoryCatalog(cfg.DefaultGalaxy()), nil, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repo := galaxy.NewRepository(db, slog.With("component", "galaxy_repository"))
	if err := repo.Seed(ctx, cfg.DefaultGalaxy()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to seed default galaxy: %w", err)
	}

	return repo, db, nil
}
