package services

import (
	"context"
	"fmt"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/obs"
	"harvest-planner/internal/ports"
	"time"
)

const MarketAnalystAgent = "MarketAnalystAgent"

// MarketAnalyst fetches current quotes and projects them forward day by day.
type MarketAnalyst struct {
	Quotes ports.QuoteSource
	Rand   ports.RandomSource
	Now    func() time.Time
}

// Analyze returns current and predicted prices for a crop over days.
// The result envelope is populated even when err is non-nil.
func (a *MarketAnalyst) Analyze(
	ctx context.Context,
	cropID string,
	days int,
) (res domain.Result[*domain.MarketAnalysis], err error) {
	defer obs.Time(ctx, "market.Analyze")(&err)

	now := nowFunc(a.Now)
	rec := domain.NewRecorder(MarketAnalystAgent, now)

	current, err := a.Quotes.Quotes(ctx, cropID)
	if err == nil && len(current) == 0 {
		err = fmt.Errorf("%w for %s", domain.ErrNoMarketData, cropID)
	}
	if err != nil {
		rec.Step("error", map[string]string{"error": err.Error()})
		return domain.Wrap[*domain.MarketAnalysis](rec, false, nil), fmt.Errorf("analyze market: %w", err)
	}
	rec.Step("fetchMarketPrices", map[string]any{"crop": cropID, "result": len(current)})

	predicted := a.predict(current, days, now())
	rec.Step("generatePredictions", map[string]any{"days": days, "result": len(predicted)})

	analysis := &domain.MarketAnalysis{
		CurrentPrices:   current,
		PriceHistory:    current,
		PredictedPrices: predicted,
		ConfidenceScore: predictionConfidence(days),
		LastUpdated:     now(),
	}

	return domain.Wrap(rec, true, analysis), nil
}

// predict compounds a ~1% daily drift with ±1% noise onto each market.
func (a *MarketAnalyst) predict(current []domain.MarketPrice, days int, start time.Time) []domain.MarketPrice {
	if days <= 0 {
		return nil
	}

	rolling := make([]domain.MarketPrice, len(current))
	copy(rolling, current)

	out := make([]domain.MarketPrice, 0, days*len(current))
	for day := 1; day <= days; day++ {
		for i := range rolling {
			p := &rolling[i]
			p.Price = roundWhole(p.Price * (1.01 + (a.Rand.Float64()*0.02 - 0.01)))
			p.Volatility = p.Volatility * (0.9 + a.Rand.Float64()*0.2)
			p.Date = start.AddDate(0, 0, day)
			out = append(out, *p)
		}
	}
	return out
}

// predictionConfidence decays with the horizon and stays within [0.1, 0.99].
func predictionConfidence(days int) float64 {
	return clamp(0.85-float64(days)*0.02, 0.1, 0.99)
}

func nowFunc(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
