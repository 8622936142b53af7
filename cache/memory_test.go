package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	TeamID int    `json:"teamId"`
	Name   string `json:"name"`
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		c := NewMemoryCache(time.Minute)
		require.NoError(t, c.Set(ctx, AggregateKey(1, 2), payload{TeamID: 1, Name: "Front Nine Mafia"}))

		var got payload
		hit, err := c.Get(ctx, AggregateKey(1, 2), &got)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, payload{TeamID: 1, Name: "Front Nine Mafia"}, got)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		c := NewMemoryCache(time.Minute)
		var got payload
		hit, err := c.Get(ctx, AggregateKey(9, 9), &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		c := NewMemoryCache(30 * time.Second)
		base := time.Now()
		c.now = func() time.Time { return base }
		require.NoError(t, c.Set(ctx, "k", payload{TeamID: 3}))

		c.now = func() time.Time { return base.Add(29 * time.Second) }
		var got payload
		hit, err := c.Get(ctx, "k", &got)
		require.NoError(t, err)
		assert.True(t, hit, "still inside the TTL")

		c.now = func() time.Time { return base.Add(31 * time.Second) }
		hit, err = c.Get(ctx, "k", &got)
		require.NoError(t, err)
		assert.False(t, hit, "expired")
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		c := NewMemoryCache(time.Minute)
		require.NoError(t, c.Set(ctx, "k", payload{TeamID: 5}))
		require.NoError(t, c.Invalidate(ctx, "k"))

		var got payload
		hit, err := c.Get(ctx, "k", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("invalidating a missing key is harmless", func(t *testing.T) {
		c := NewMemoryCache(time.Minute)
		assert.NoError(t, c.Invalidate(ctx, "never-set"))
	})

	t.Run("stored values are snapshots", func(t *testing.T) {
		c := NewMemoryCache(time.Minute)
		v := payload{TeamID: 7, Name: "before"}
		require.NoError(t, c.Set(ctx, "k", v))
		v.Name = "after"

		var got payload
		hit, err := c.Get(ctx, "k", &got)
		require.NoError(t, err)
		require.True(t, hit)
		assert.Equal(t, "before", got.Name)
	})
}

func TestAggregateKey(t *testing.T) {
	assert.Equal(t, "agg:4:r2", AggregateKey(4, 2))
	assert.NotEqual(t, AggregateKey(1, 2), AggregateKey(2, 1))
}
