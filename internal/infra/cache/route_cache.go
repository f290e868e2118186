// Package cache provides the Redis-backed cache for external directions.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"marketnav/config"
	"marketnav/internal/domain/lifecycle"
	"marketnav/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "marketnav:routes:"

// redisRouteCache implements service.RouteCache on top of Redis
type redisRouteCache struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisRouteCache wraps an existing client. An empty prefix falls back to the default.
func NewRedisRouteCache(client redis.UniversalClient, keyPrefix string) service.RouteCache {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &redisRouteCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cached route, or nil on a miss
func (c *redisRouteCache) Get(ctx context.Context, key string) (*service.ExternalRoute, error) {
	val, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}

	var route service.ExternalRoute
	if err := json.Unmarshal(val, &route); err != nil {
		return nil, errors.Wrap(err, "decode cached route")
	}

	return &route, nil
}

// Set stores the route with a TTL
func (c *redisRouteCache) Set(ctx context.Context, key string, route *service.ExternalRoute, ttl time.Duration) error {
	val, err := json.Marshal(route)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, c.keyPrefix+key, val, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

// noopRouteCache never stores anything; used when Redis is not configured
type noopRouteCache struct{}

func (noopRouteCache) Get(context.Context, string) (*service.ExternalRoute, error) {
	return nil, nil
}

func (noopRouteCache) Set(context.Context, string, *service.ExternalRoute, time.Duration) error {
	return nil
}

// NewRouteCache builds the route cache from config. Without a Redis address caching is disabled.
func NewRouteCache(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) service.RouteCache {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		logger.Info("Redis not configured, external route caching disabled")

		return noopRouteCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			// the cache is optional; an unreachable Redis only costs provider calls
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis ping failed, route cache will miss",
					slog.String("addr", cfg.Redis.Addr),
					slog.Any("error", err),
				)

				return nil
			}
			logger.Info("Redis route cache connected", slog.String("addr", cfg.Redis.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisRouteCache(client, cfg.Redis.KeyPrefix)
}

// Module provides the route cache
var Module = fx.Options(
	fx.Provide(NewRouteCache),
)
