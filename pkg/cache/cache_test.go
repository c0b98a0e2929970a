package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/pkg/config"
)

func TestCache_DisabledIsNoop(t *testing.T) {
	c := New(nil, "dashboard", time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, c.Key("stats", "1"), map[string]int{"a": 1}))

	var out map[string]int
	assert.ErrorIs(t, c.Get(ctx, c.Key("stats", "1"), &out), ErrMiss)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestCache_Key(t *testing.T) {
	c := New(nil, "dashboard", time.Minute)

	assert.Equal(t, "dashboard:stats:user_1:all", c.Key("stats", "user_1", "all"))
}

func TestNewRedisClient_NoAddr(t *testing.T) {
	client, err := NewRedisClient(config.RedisConfig{})

	require.NoError(t, err)
	assert.Nil(t, client)
}
