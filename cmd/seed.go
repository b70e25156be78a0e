package main

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"community-ads/internal/adapter/postgres"
	redisadapter "community-ads/internal/adapter/redis"
	"community-ads/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo community catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()

		repo := postgres.NewCommunityRepository(pool)
		if err = db.Seed(ctx, repo); err != nil {
			return err
		}
		logger.Info("catalog seeded", slog.Int("communities", len(db.Catalog())))

		if cfg.Redis.Enabled() {
			client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
			defer client.Close()
			cache := redisadapter.NewCatalogCache(repo, client, cfg.Redis.TTL, logger)
			if err = cache.Invalidate(ctx); err != nil {
				logger.Warn("catalog cache invalidation failed", slog.Any("error", err))
			}
		}
		return nil
	},
}
