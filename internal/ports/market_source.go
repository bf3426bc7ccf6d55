package ports

import (
	"context"
	"harvest-planner/internal/domain"
	"time"
)

// Boundary for current price quotes consumed by the market step.
type QuoteSource interface {
	// Return current quotes for a crop, or an error wrapping domain.ErrNoMarketData.
	Quotes(ctx context.Context, cropID string) ([]domain.MarketPrice, error)
}

// Boundary for the live-price service.
type MarketSource interface {
	FetchMarkets(ctx context.Context, cropID string) (*domain.LivePrices, error)
}

// Short-lived store for live-price snapshots.
type PriceCache interface {
	// Return the cached snapshot; nil without error on a miss.
	Get(ctx context.Context, cropID string) (*domain.LivePrices, error)
	Set(ctx context.Context, cropID string, prices *domain.LivePrices, ttl time.Duration) error
}
