package cache

import (
	"context"
	"fmt"
	"harvest-planner/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePrices() *domain.LivePrices {
	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return &domain.LivePrices{
		CropID: "onion",
		Markets: []domain.Market{{
			ID:           "lasalgaon",
			Name:         "Lasalgaon APMC",
			CurrentPrice: 1850,
			Volatility:   domain.LevelHigh,
			Demand:       domain.LevelMedium,
			LastUpdated:  at,
		}},
		Metadata: domain.LivePriceMetadata{FetchedAt: at, Source: "test", RefreshInterval: 300},
	}
}

func TestRedisPriceCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewRedisPriceCache(client)
	ctx := context.Background()

	got, err := c.Get(ctx, "onion")
	require.NoError(t, err)
	assert.Nil(t, got)

	want := samplePrices()
	require.NoError(t, c.Set(ctx, "onion", want, time.Minute))

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Regexp(t, `^prices:[0-9a-f]{16}$`, keys[0])

	got, err = c.Get(ctx, "onion")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Markets[0].Name, got.Markets[0].Name)
	assert.Equal(t, want.Markets[0].Volatility, got.Markets[0].Volatility)
	assert.True(t, want.Metadata.FetchedAt.Equal(got.Metadata.FetchedAt))

	mr.FastForward(2 * time.Minute)
	got, err = c.Get(ctx, "onion")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisPriceCacheCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewRedisPriceCache(client)
	require.NoError(t, mr.Set(c.key("wheat"), "{not json"))

	_, err := c.Get(context.Background(), "wheat")
	assert.Error(t, err)
}

func TestMemoryPriceCacheExpires(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	c := NewMemoryPriceCache()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	want := samplePrices()
	require.NoError(t, c.Set(ctx, "onion", want, time.Minute))

	got, err := c.Get(ctx, "onion")
	require.NoError(t, err)
	assert.Same(t, want, got)

	now = now.Add(time.Minute)
	got, err = c.Get(ctx, "onion")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryPriceCacheDropsExpiredEntries(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	c := NewMemoryPriceCache()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	for i := range 100 {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("crop-%d", i), samplePrices(), time.Second))
	}
	require.Len(t, c.entries, 100)

	now = now.Add(time.Second)
	got, err := c.Get(ctx, "crop-0")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Len(t, c.entries, 99)

	require.NoError(t, c.Set(ctx, "onion", samplePrices(), time.Minute))
	assert.Len(t, c.entries, 1)
	assert.Contains(t, c.entries, "onion")
}
