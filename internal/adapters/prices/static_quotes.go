package prices

import (
	"context"
	"fmt"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/reference"
	"strings"
	"time"
)

// StaticQuotes serves the built-in per-crop quotes after a simulated
// network delay.
type StaticQuotes struct {
	Delay time.Duration
	Now   func() time.Time
}

func (s *StaticQuotes) Quotes(ctx context.Context, cropID string) ([]domain.MarketPrice, error) {
	if err := sleep(ctx, s.Delay); err != nil {
		return nil, err
	}

	crop := strings.ToLower(strings.TrimSpace(cropID))
	seed := reference.SeedQuotes(crop)
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w for %s", domain.ErrNoMarketData, cropID)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	out := make([]domain.MarketPrice, 0, len(seed))
	for _, q := range seed {
		out = append(out, domain.MarketPrice{
			MarketID:   q.MarketID,
			MarketName: q.MarketName,
			Crop:       crop,
			Price:      q.Price,
			Date:       now(),
			Volatility: q.Volatility,
		})
	}
	return out, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
