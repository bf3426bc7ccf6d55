package services

import (
	"harvest-planner/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revenueFixture() (RevenueInputs, domain.Market) {
	in := RevenueInputs{
		Crop:      domain.Crop{ID: "wheat", LossRatePerDay: 0.05, BasePrice: 2200},
		Quantity:  120,
		Transport: domain.TransportRate{VehicleType: "Large Truck", RatePerKm: 35, Capacity: 100},
		Storage:   domain.StorageCondition{Type: "Covered Shed", LossMultiplier: 1, CostPerDay: 2},
	}
	market := domain.Market{ID: "mandi-a", Name: "Azadpur Mandi", DistanceKm: 45, CurrentPrice: 2350, ProjectedPrice7Days: 2420}
	return in, market
}

func TestCompareRevenueNow(t *testing.T) {
	in, market := revenueFixture()

	c, err := CompareRevenue(in, market, domain.ScenarioNow)
	require.NoError(t, err)

	assert.Equal(t, 0.0, c.StorageLoss)
	assert.Equal(t, 0.0, c.StorageCost)
	assert.InDelta(t, 282000, c.GrossRevenue, 1e-6)
	// 120 quintals on a 100 quintal truck is two trips.
	assert.InDelta(t, 45*35*2, c.TransportCost, 1e-9)
	assert.InDelta(t, 278850, c.NetRevenue, 1e-6)
	assert.InDelta(t, 5.625, c.ProfitMargin, 1e-9)
}

func TestCompareRevenueSevenDays(t *testing.T) {
	in, market := revenueFixture()

	c, err := CompareRevenue(in, market, domain.ScenarioSevenDay)
	require.NoError(t, err)

	assert.InDelta(t, 119.58*2420, c.GrossRevenue, 1e-6)
	assert.InDelta(t, 1680, c.StorageCost, 1e-9)
	assert.InDelta(t, 0.42*2420, c.StorageLoss, 1e-6)
	assert.InDelta(t, c.GrossRevenue-c.TransportCost-c.StorageCost, c.NetRevenue, 0)
}

func TestCompareMarketsProducesTwoScenariosPerMarket(t *testing.T) {
	in, a := revenueFixture()
	b := domain.Market{ID: "mandi-b", Name: "Vashi APMC", DistanceKm: 120, CurrentPrice: 2280, ProjectedPrice7Days: 2380}

	got, err := CompareMarkets(in, []domain.Market{a, b})
	require.NoError(t, err)
	require.Len(t, got, 4)

	want := []struct {
		id string
		s  domain.Scenario
	}{{"mandi-a", domain.ScenarioNow}, {"mandi-a", domain.ScenarioSevenDay}, {"mandi-b", domain.ScenarioNow}, {"mandi-b", domain.ScenarioSevenDay}}
	for i, w := range want {
		assert.Equal(t, w.id, got[i].MarketID)
		assert.Equal(t, w.s, got[i].Scenario)
		assert.Equal(t, got[i].GrossRevenue-got[i].TransportCost-got[i].StorageCost, got[i].NetRevenue)
	}
}

func TestCompareRevenueGuards(t *testing.T) {
	in, market := revenueFixture()

	in.Crop.BasePrice = 0
	c, err := CompareRevenue(in, market, domain.ScenarioNow)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.ProfitMargin)

	in.Transport.Capacity = 0
	_, err = CompareRevenue(in, market, domain.ScenarioNow)
	assert.Error(t, err)
}
