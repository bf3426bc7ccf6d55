package services

import (
	"fmt"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/reference"
)

const (
	DefaultSensitivityDays = 14
	breakEvenFraction      = 0.95
)

// SensitivityInputs extends a revenue comparison with what-if knobs.
// Multipliers of zero are treated as 1.
type SensitivityInputs struct {
	RevenueInputs
	Market         domain.Market
	Days           int
	FuelMultiplier float64
	LossMultiplier float64
}

// Sensitivity evaluates net revenue for selling on each day 0..Days, with the
// price interpolated linearly toward the 7-day projection, and finds the
// revenue-maximising day.
func Sensitivity(in SensitivityInputs) (*domain.SensitivityReport, error) {
	days := in.Days
	if days <= 0 {
		days = DefaultSensitivityDays
	}
	fuelMult := in.FuelMultiplier
	if fuelMult == 0 {
		fuelMult = 1
	}
	lossMult := in.LossMultiplier
	if lossMult == 0 {
		lossMult = 1
	}

	trips, err := domain.TripsNeeded(in.Quantity, in.Transport.Capacity)
	if err != nil {
		return nil, fmt.Errorf("sensitivity: %w", err)
	}

	km := in.Market.DistanceKm
	fuel := km / reference.KmPerLiter * reference.FuelPricePerLiter * fuelMult
	transport := (in.Transport.RatePerKm*km + fuel) * float64(trips)

	dailyRise := (in.Market.ProjectedPrice7Days - in.Market.CurrentPrice) / 7
	lossRate := in.Crop.LossRatePerDay * in.Storage.LossMultiplier * lossMult

	report := &domain.SensitivityReport{
		MarketID:     in.Market.ID,
		Points:       make([]domain.SensitivityPoint, 0, days+1),
		BreakEvenDay: -1,
	}
	for day := 0; day <= days; day++ {
		price := in.Market.CurrentPrice + dailyRise*float64(day)
		lossPct := float64(day) * lossRate / 100
		gross := in.Quantity * (1 - lossPct) * price
		storageCost := float64(day) * in.Storage.CostPerDay * in.Quantity

		report.Points = append(report.Points, domain.SensitivityPoint{
			Day:           day,
			Price:         round2(price),
			LossPct:       round2(lossPct * 100),
			GrossRevenue:  roundWhole(gross),
			TransportCost: roundWhole(transport),
			StorageCost:   roundWhole(storageCost),
			NetRevenue:    roundWhole(gross - transport - storageCost),
		})
	}

	for i, p := range report.Points {
		if p.NetRevenue > report.Points[report.OptimalDay].NetRevenue {
			report.OptimalDay = i
		}
	}
	report.PeakRevenue = report.Points[report.OptimalDay].NetRevenue

	for i := report.OptimalDay + 1; i < len(report.Points); i++ {
		if report.Points[i].NetRevenue < report.PeakRevenue*breakEvenFraction {
			report.BreakEvenDay = i
			break
		}
	}

	return report, nil
}
