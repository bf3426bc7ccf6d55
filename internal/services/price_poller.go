package services

import (
	"context"
	"fmt"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/logger"
	"harvest-planner/internal/ports"
	"harvest-planner/internal/reference"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultPriceRefreshInterval = 5 * time.Minute

	priceFetchTimeout = 30 * time.Second
)

// PricePoller keeps live-price snapshots fresh for the tracked crops and
// serves them from cache. Concurrent refreshes of the same crop share one fetch.
type PricePoller struct {
	Source   ports.MarketSource
	Cache    ports.PriceCache
	Crops    []string
	Interval time.Duration

	group singleflight.Group
}

func (p *PricePoller) interval() time.Duration {
	if p.Interval <= 0 {
		return DefaultPriceRefreshInterval
	}
	return p.Interval
}

// Get returns the cached snapshot for a crop, fetching when it is missing or
// when refresh is set.
func (p *PricePoller) Get(ctx context.Context, cropID string, refresh bool) (*domain.LivePrices, error) {
	cropID = strings.ToLower(strings.TrimSpace(cropID))
	if cropID == "" {
		return nil, fmt.Errorf("live prices: %w: crop is required", domain.ErrInvalidInput)
	}
	if _, ok := reference.CropByID(cropID); !ok {
		return nil, fmt.Errorf("live prices: %w: %q", domain.ErrUnknownCrop, cropID)
	}

	if !refresh {
		cached, err := p.Cache.Get(ctx, cropID)
		if err != nil {
			logger.Warnf(ctx, "price cache read crop=%s: %v", cropID, err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	// Waiters share the fetch, so one caller going away must not cancel it.
	v, err, _ := p.group.Do(cropID, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), priceFetchTimeout)
		defer cancel()
		return p.refresh(fetchCtx, cropID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.LivePrices), nil
}

func (p *PricePoller) refresh(ctx context.Context, cropID string) (*domain.LivePrices, error) {
	prices, err := p.Source.FetchMarkets(ctx, cropID)
	if err != nil {
		return nil, fmt.Errorf("live prices: fetch %s: %w", cropID, err)
	}

	if err := p.Cache.Set(ctx, cropID, prices, p.interval()); err != nil {
		logger.Warnf(ctx, "price cache write crop=%s: %v", cropID, err)
	}
	return prices, nil
}

// Run refreshes every tracked crop immediately and then once per interval
// until ctx is cancelled.
func (p *PricePoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval())
	defer ticker.Stop()

	for {
		for _, crop := range p.Crops {
			if _, err := p.Get(ctx, crop, true); err != nil {
				logger.Warnf(ctx, "price poll crop=%s: %v", crop, err)
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
