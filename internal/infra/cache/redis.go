// Package cache implements the catalog listing cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"krishihive/config"
	"krishihive/internal/domain/entity"
	"krishihive/internal/errors"
	"krishihive/internal/usecase/impl"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

const (
	listingKeyPrefix = "catalog:listing:"
	defaultCacheTTL  = 5 * time.Minute
)

// redisProductCache implements impl.ProductCache. Cache failures are logged
// and reported as misses; the catalog never fails because Redis did.
type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis-backed product cache. Returns a nil cache when Redis
// is not configured, which disables caching in the catalog service.
func New(params Params) (impl.ProductCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis not configured, catalog cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(params.Ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping Redis")
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("closing Redis client")

			return client.Close()
		},
	})

	return &redisProductCache{
		client: client,
		ttl:    ttl,
		logger: params.Logger,
	}, nil
}

func listingKey(category string) string {
	if category == "" {
		return listingKeyPrefix + "all"
	}

	return listingKeyPrefix + category
}

// GetListing returns the cached listing for a category, reporting a miss on
// any Redis or decode failure.
func (c *redisProductCache) GetListing(ctx context.Context, category string) ([]*entity.Product, bool) {
	raw, err := c.client.Get(ctx, listingKey(category)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("catalog cache read failed",
				slog.String("category", category),
				slog.Any("error", err),
			)
		}

		return nil, false
	}

	var products []*entity.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		c.logger.Warn("catalog cache entry corrupt, dropping",
			slog.String("category", category),
			slog.Any("error", err),
		)
		c.client.Del(ctx, listingKey(category))

		return nil, false
	}

	return products, true
}

// SetListing stores the listing for a category. Best-effort.
func (c *redisProductCache) SetListing(ctx context.Context, category string, products []*entity.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn("catalog cache encode failed", slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, listingKey(category), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed",
			slog.String("category", category),
			slog.Any("error", err),
		)
	}
}

// InvalidateListing drops the cached listing for a category.
func (c *redisProductCache) InvalidateListing(ctx context.Context, category string) {
	if err := c.client.Del(ctx, listingKey(category)).Err(); err != nil {
		c.logger.Warn("catalog cache invalidate failed",
			slog.String("category", category),
			slog.Any("error", err),
		)
	}
}
