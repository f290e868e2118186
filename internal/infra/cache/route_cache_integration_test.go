//go:build integration

package cache

import (
	"testing"
	"time"

	"marketnav/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisRouteCache_Integration(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := t.Context()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(connStr)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() {
		_ = client.Close()
	})

	c := NewRedisRouteCache(client, "it:")

	miss, err := c.Get(ctx, "walking:6.5244,3.3792:6.4550,3.3941")
	require.NoError(t, err)
	assert.Nil(t, miss)

	route := &service.ExternalRoute{
		Provider:        "mapbox",
		DistanceMeters:  8421.5,
		DurationSeconds: 6015,
		Coordinates:     [][2]float64{{3.3792, 6.5244}, {3.3941, 6.4550}},
	}
	require.NoError(t, c.Set(ctx, "walking:6.5244,3.3792:6.4550,3.3941", route, time.Minute))

	hit, err := c.Get(ctx, "walking:6.5244,3.3792:6.4550,3.3941")
	require.NoError(t, err)
	assert.Equal(t, route, hit)

	ttl, err := client.TTL(ctx, "it:walking:6.5244,3.3792:6.4550,3.3941").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
