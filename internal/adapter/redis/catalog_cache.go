package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"community-ads/internal/core/domain"
	"community-ads/internal/core/port"
)

const catalogKey = "community-ads:catalog:v1"

// CatalogCache caches the community catalog in Redis in front of another
// port.CommunityRepository. Redis failures are logged and the wrapped
// repository answers instead.
type CatalogCache struct {
	next   port.CommunityRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCatalogCache wraps next with a cache stored under a single key for
// ttl.
func NewCatalogCache(next port.CommunityRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CatalogCache {
	return &CatalogCache{next: next, client: client, ttl: ttl, logger: logger}
}

// ListCommunities returns the cached catalog, filling the cache on a miss.
func (c *CatalogCache) ListCommunities(ctx context.Context) ([]domain.Community, error) {
	val, err := c.client.Get(ctx, catalogKey).Bytes()
	switch {
	case err == nil:
		var catalog []domain.Community
		if err = json.Unmarshal(val, &catalog); err == nil {
			return catalog, nil
		}
		c.logger.Warn("catalog cache decode error", slog.Any("error", err))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("catalog cache read error", slog.Any("error", err))
	}

	catalog, err := c.next.ListCommunities(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(catalog)
	if err != nil {
		return catalog, nil
	}
	if err = c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write error", slog.Any("error", err))
	}
	return catalog, nil
}

// GetCommunity looks the id up in the cached catalog.
func (c *CatalogCache) GetCommunity(ctx context.Context, id string) (*domain.Community, error) {
	catalog, err := c.ListCommunities(ctx)
	if err != nil {
		return nil, err
	}
	for i := range catalog {
		if catalog[i].ID == id {
			cm := catalog[i]
			return &cm, nil
		}
	}
	return nil, nil
}

// Invalidate drops the cached catalog. The seed command calls it after
// writing communities.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
