package prices

import (
	"context"
	"fmt"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/ports"
)

// Representative volatility, in percent, for each live-price class.
var levelVolatility = map[domain.Level]float64{
	domain.LevelLow:    2.0,
	domain.LevelMedium: 3.0,
	domain.LevelHigh:   5.0,
}

// LiveQuotes adapts a live-price MarketSource to the QuoteSource port.
// Quotes keep the source's ordering, highest current price first.
type LiveQuotes struct {
	Source ports.MarketSource
}

func (l *LiveQuotes) Quotes(ctx context.Context, cropID string) ([]domain.MarketPrice, error) {
	live, err := l.Source.FetchMarkets(ctx, cropID)
	if err != nil {
		return nil, fmt.Errorf("live quotes: %w", err)
	}
	if live == nil || len(live.Markets) == 0 {
		return nil, fmt.Errorf("%w for %s", domain.ErrNoMarketData, cropID)
	}

	out := make([]domain.MarketPrice, 0, len(live.Markets))
	for _, m := range live.Markets {
		vol, ok := levelVolatility[m.Volatility]
		if !ok {
			vol = levelVolatility[domain.LevelMedium]
		}
		out = append(out, domain.MarketPrice{
			MarketID:   m.ID,
			MarketName: m.Name,
			Crop:       cropID,
			Price:      m.CurrentPrice,
			Date:       m.LastUpdated,
			Volatility: vol,
		})
	}
	return out, nil
}
