package services

import (
	"fmt"
	"harvest-planner/internal/domain"
)

// RevenueInputs are the fixed parts of a comparison; only the market and
// scenario vary across a run.
type RevenueInputs struct {
	Crop      domain.Crop
	Quantity  float64
	Transport domain.TransportRate
	Storage   domain.StorageCondition
}

// CompareRevenue computes gross and net revenue for selling at market under scenario.
func CompareRevenue(in RevenueInputs, market domain.Market, scenario domain.Scenario) (domain.RevenueComparison, error) {
	days := float64(scenario.Days())
	price := market.CurrentPrice
	if scenario == domain.ScenarioSevenDay {
		price = market.ProjectedPrice7Days
	}

	trips, err := domain.TripsNeeded(in.Quantity, in.Transport.Capacity)
	if err != nil {
		return domain.RevenueComparison{}, fmt.Errorf("compare revenue: %s: %w", in.Transport.VehicleType, err)
	}

	lossPct := days * in.Crop.LossRatePerDay * in.Storage.LossMultiplier / 100
	effective := in.Quantity * (1 - lossPct)

	gross := effective * price
	transport := market.DistanceKm * in.Transport.RatePerKm * float64(trips)
	storageCost := days * in.Storage.CostPerDay * in.Quantity
	net := gross - transport - storageCost

	// Deviation from the zero-logistics value of the harvest at base price.
	margin := 0.0
	if baseline := in.Quantity * in.Crop.BasePrice; baseline != 0 {
		margin = (net - baseline) / baseline * 100
	}

	return domain.RevenueComparison{
		MarketID:      market.ID,
		MarketName:    market.Name,
		Scenario:      scenario,
		GrossRevenue:  gross,
		TransportCost: transport,
		StorageCost:   storageCost,
		StorageLoss:   (in.Quantity - effective) * price,
		NetRevenue:    net,
		ProfitMargin:  margin,
	}, nil
}

// CompareMarkets produces a "now" and a "7days" comparison for every market, in market order.
func CompareMarkets(in RevenueInputs, markets []domain.Market) ([]domain.RevenueComparison, error) {
	out := make([]domain.RevenueComparison, 0, 2*len(markets))
	for _, m := range markets {
		for _, s := range []domain.Scenario{domain.ScenarioNow, domain.ScenarioSevenDay} {
			c, err := CompareRevenue(in, m, s)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	return out, nil
}
