package cache

import (
	"context"
	"errors"
	"fmt"
	"harvest-planner/internal/domain"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

// RedisPriceCache stores live-price snapshots as JSON with a TTL.
type RedisPriceCache struct {
	client *redis.Client
	prefix string
}

func NewRedisPriceCache(client *redis.Client) *RedisPriceCache {
	return &RedisPriceCache{client: client, prefix: "prices:"}
}

// key hashes the crop id so arbitrary user input cannot shape the keyspace.
func (c *RedisPriceCache) key(cropID string) string {
	return fmt.Sprintf("%s%016x", c.prefix, xxhash.Sum64String(cropID))
}

func (c *RedisPriceCache) Get(ctx context.Context, cropID string) (*domain.LivePrices, error) {
	raw, err := c.client.Get(ctx, c.key(cropID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("price cache get %s: %w", cropID, err)
	}

	var out domain.LivePrices
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("price cache decode %s: %w", cropID, err)
	}
	return &out, nil
}

func (c *RedisPriceCache) Set(ctx context.Context, cropID string, prices *domain.LivePrices, ttl time.Duration) error {
	raw, err := sonic.Marshal(prices)
	if err != nil {
		return fmt.Errorf("price cache encode %s: %w", cropID, err)
	}
	if err := c.client.Set(ctx, c.key(cropID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("price cache set %s: %w", cropID, err)
	}
	return nil
}
