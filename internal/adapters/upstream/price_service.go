package upstream

import (
	"context"
	"fmt"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/obs"
	"time"

	"github.com/bytedance/sonic"
)

// PriceService is the HTTP client for the live-price service.
type PriceService struct {
	client
}

func NewPriceService(url string, timeout time.Duration) (*PriceService, error) {
	c, err := newClient(url, "", timeout)
	if err != nil {
		return nil, fmt.Errorf("price service: %w", err)
	}
	return &PriceService{client: c}, nil
}

type priceRequest struct {
	CropID string `json:"cropId"`
}

type priceResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		Markets  []domain.Market          `json:"markets"`
		Metadata domain.LivePriceMetadata `json:"metadata"`
	} `json:"data"`
}

func (p *PriceService) FetchMarkets(ctx context.Context, cropID string) (_ *domain.LivePrices, err error) {
	defer obs.Time(ctx, "prices.FetchMarkets")(&err)

	body, err := p.post(ctx, priceRequest{CropID: cropID})
	if err != nil {
		return nil, fmt.Errorf("fetch markets %s: %w", cropID, err)
	}

	var res priceResponse
	if err := sonic.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("fetch markets %s: %w: %w", cropID, domain.ErrMalformedResponse, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("fetch markets %s: %w: %s", cropID, domain.ErrGateway, res.Error)
	}
	if len(res.Data.Markets) == 0 {
		return nil, fmt.Errorf("fetch markets %s: %w", cropID, domain.ErrNoMarketData)
	}

	return &domain.LivePrices{
		CropID:   cropID,
		Markets:  res.Data.Markets,
		Metadata: res.Data.Metadata,
	}, nil
}
