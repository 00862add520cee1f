// Package cache provides the query cache behind the channel-partner search.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"estatex/config"
	"estatex/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 5 * time.Second

// redisCache implements the service.QueryCache interface on Redis, storing
// values JSON-serialized.
type redisCache struct {
	client *redis.Client
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to read cache key %s", key)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode cache key %s", key)
	}

	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode cache key %s", key)
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write cache key %s", key)
	}

	return nil
}

// noopCache is used when Redis is not configured. Get always misses and Set
// discards, so search falls through to the database on every request.
type noopCache struct{}

func (noopCache) Get(_ context.Context, _ string, _ any) (bool, error) {
	return false, nil
}

func (noopCache) Set(_ context.Context, _ string, _ any, _ time.Duration) error {
	return nil
}

// CacheParams holds dependencies for QueryCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewQueryCache creates a QueryCache based on configuration
func NewQueryCache(params CacheParams) service.QueryCache {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, search caching disabled")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing Redis client")

			return client.Close()
		},
	})

	return &redisCache{client: client}
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewQueryCache),
)
