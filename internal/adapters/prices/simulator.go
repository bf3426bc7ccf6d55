package prices

import (
	"context"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/ports"
	"harvest-planner/internal/reference"
	"math"
	"sort"
	"strings"
	"time"
)

const (
	simulatedSource     = "Simulated Agmarknet Data"
	simulatedFeed       = "Simulated Agmarknet API"
	simulatedDisclaimer = "Prices are simulated for demonstration. Real implementation would connect to data.gov.in or Agmarknet portal."
)

// Simulator produces plausible live mandi prices locally. It satisfies
// ports.MarketSource so it can stand in for the live-price service.
type Simulator struct {
	Rand            ports.RandomSource
	Now             func() time.Time
	RefreshInterval time.Duration
}

func (s *Simulator) FetchMarkets(ctx context.Context, cropID string) (*domain.LivePrices, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	at := now()
	crop := strings.ToLower(strings.TrimSpace(cropID))
	mult := reference.CropPriceMultiplier(crop)

	bases := reference.BaseMarkets()
	markets := make([]domain.Market, 0, len(bases))
	for _, b := range bases {
		current := s.price(b, mult, at)
		markets = append(markets, domain.Market{
			ID:                  b.ID,
			Name:                b.Name,
			Location:            b.Location,
			State:               b.State,
			DistanceKm:          b.DistanceKm,
			CurrentPrice:        current,
			ProjectedPrice7Days: s.project(current, b),
			Volatility:          domain.ClassifyVolatility(b.Volatility),
			Demand:              s.demand(b),
			MinPrice:            math.Round(current * 0.95),
			MaxPrice:            math.Round(current * 1.05),
			ModalPrice:          current,
			Arrivals:            int(math.Round(s.Rand.Float64()*500 + 100)),
			Source:              simulatedSource,
			LastUpdated:         at,
		})
	}

	sort.SliceStable(markets, func(i, j int) bool {
		return markets[i].CurrentPrice > markets[j].CurrentPrice
	})

	interval := s.RefreshInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &domain.LivePrices{
		CropID:  crop,
		Markets: markets,
		Metadata: domain.LivePriceMetadata{
			FetchedAt:       at,
			Source:          simulatedFeed,
			Disclaimer:      simulatedDisclaimer,
			RefreshInterval: int(interval / time.Second),
		},
	}, nil
}

// price applies a ±2% time-of-day swing and volatility-scaled noise.
func (s *Simulator) price(b reference.BaseMarket, mult float64, at time.Time) float64 {
	timeVariation := math.Sin(float64(at.Hour())/24*math.Pi*2) * 0.02
	noise := (s.Rand.Float64() - 0.5) * b.Volatility * 2
	return math.Round(b.BasePrice * mult * (1 + timeVariation + noise))
}

// project drifts the price for a week in the direction demand points.
func (s *Simulator) project(current float64, b reference.BaseMarket) float64 {
	trend := 0.0
	switch {
	case b.DemandFactor > 1:
		trend = 1
	case b.DemandFactor < 0.95:
		trend = -1
	}
	magnitude := s.Rand.Float64() * b.Volatility * 7
	return math.Round(current * (1 + trend*magnitude))
}

func (s *Simulator) demand(b reference.BaseMarket) domain.Level {
	adjusted := b.DemandFactor + (s.Rand.Float64()-0.5)*0.2
	switch {
	case adjusted > 1.1:
		return domain.LevelHigh
	case adjusted > 0.95:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}
