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

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "community-ads/internal/adapter/http"
	"community-ads/internal/adapter/postgres"
	redisadapter "community-ads/internal/adapter/redis"
	"community-ads/internal/adapter/usecase"
	"community-ads/internal/core/port"
	"community-ads/internal/db"
)

// exitCode is set to 128+signal when a signal stops the server.
var exitCode int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

// runServe optionally applies migrations, connects to PostgreSQL (and
// Redis when configured), then serves HTTP until SIGINT or SIGTERM and
// shuts down gracefully.
func runServe(cmd *cobra.Command, args []string) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	var communities port.CommunityRepository = postgres.NewCommunityRepository(pool)
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		communities = redisadapter.NewCatalogCache(communities, client, cfg.Redis.TTL, logger)
		logger.Info("catalog cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	svc := usecase.NewCampaignUseCase(
		communities,
		postgres.NewDraftRepository(pool),
		usecase.WithLocation(cfg.Location.Default),
	)
	handler := httpadapter.NewHandler(svc, logger, cfg.Media.MaxImageBytes)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		select {
		case sig := <-quit:
			exitCode = 128 + int(sig.(syscall.Signal))
		case <-gctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
