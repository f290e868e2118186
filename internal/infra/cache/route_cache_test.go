package cache

import (
	"testing"
	"time"

	"marketnav/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRouteCache(t *testing.T) {
	var c service.RouteCache = noopRouteCache{}

	require.NoError(t, c.Set(t.Context(), "k", &service.ExternalRoute{Provider: "google"}, time.Minute))

	route, err := c.Get(t.Context(), "k")
	require.NoError(t, err)
	assert.Nil(t, route)
}

func TestNewRedisRouteCache_DefaultPrefix(t *testing.T) {
	c, ok := NewRedisRouteCache(nil, "").(*redisRouteCache)
	require.True(t, ok)
	assert.Equal(t, defaultKeyPrefix, c.keyPrefix)

	c, ok = NewRedisRouteCache(nil, "test:").(*redisRouteCache)
	require.True(t, ok)
	assert.Equal(t, "test:", c.keyPrefix)
}
