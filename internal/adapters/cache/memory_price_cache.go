package cache

import (
	"context"
	"harvest-planner/internal/domain"
	"sync"
	"time"
)

type memoryEntry struct {
	prices    *domain.LivePrices
	expiresAt time.Time
}

// MemoryPriceCache is the in-process PriceCache used when Redis is not configured.
type MemoryPriceCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryPriceCache() *MemoryPriceCache {
	return &MemoryPriceCache{entries: map[string]memoryEntry{}, now: time.Now}
}

func (c *MemoryPriceCache) Get(_ context.Context, cropID string) (*domain.LivePrices, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[cropID]
	if !ok {
		return nil, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, cropID)
		return nil, nil
	}
	return e.prices, nil
}

// Set stores a snapshot and drops every entry that has already expired.
func (c *MemoryPriceCache) Set(_ context.Context, cropID string, prices *domain.LivePrices, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[cropID] = memoryEntry{prices: prices, expiresAt: now.Add(ttl)}
	return nil
}
