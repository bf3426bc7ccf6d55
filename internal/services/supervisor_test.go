package services

import (
	"context"
	"errors"
	"harvest-planner/internal/adapters/distance"
	"harvest-planner/internal/domain"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
	err     error
}

func (f *fakeHistory) Save(ctx context.Context, farm domain.FarmContext, e domain.HistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeHistory) ListByUser(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error) {
	return nil, nil
}

func newTestSupervisor(history *fakeHistory) *Supervisor {
	rng := constRand(0.5)
	s := &Supervisor{
		Market: &MarketAnalyst{Quotes: fakeQuotes{prices: wheatQuotes()}, Rand: rng, Now: fixedClock},
		Logistics: &LogisticsCoordinator{
			Distances: distance.NewMockDistanceProvider([]distance.MockPair{
				{From: "Karnal", To: "Azadpur Mandi", Km: 120},
				{From: "Karnal", To: "Vashi APMC", Km: 1400},
				{From: "Karnal", To: "Koyambedu", Km: 2300},
			}),
			Rand: rng,
			Now:  fixedClock,
		},
		Storage: &StorageStrategist{Now: fixedClock},
		Now:     fixedClock,
	}
	if history != nil {
		s.History = history
	}
	return s
}

func wheatFarm() domain.FarmContext {
	return domain.FarmContext{
		UserID:      "farmer-7",
		CropID:      "wheat",
		Quantity:    100,
		Location:    "Karnal",
		StorageType: "Covered Shed",
	}
}

func TestSupervisorRun(t *testing.T) {
	history := &fakeHistory{}
	s := newTestSupervisor(history)

	res := s.Run(context.Background(), wheatFarm())
	require.True(t, res.Success)
	rep := res.Data
	require.NotNil(t, rep)
	assert.NotEmpty(t, rep.RunID)

	// A ~1% daily rise on wheat outweighs a week of 0.5% decay.
	assert.Equal(t, domain.RecommendStore, rep.Recommendation.Type)
	assert.Equal(t, "Azadpur Mandi", rep.Recommendation.TargetMarket)
	assert.Equal(t, testNow.AddDate(0, 0, 7), rep.Recommendation.BestTimeToSell)

	require.Len(t, rep.Markets, 3)
	assert.Equal(t, 120.0, rep.Markets[0].DistanceKm)
	assert.Equal(t, domain.LevelLow, rep.Markets[0].Volatility)
	assert.Equal(t, domain.LevelMedium, rep.Markets[1].Volatility)
	assert.Equal(t, domain.LevelHigh, rep.Markets[2].Volatility)
	for _, m := range rep.Markets {
		assert.Greater(t, m.ProjectedPrice7Days, m.CurrentPrice)
	}

	assert.Len(t, rep.Comparisons, 6)
	require.NotNil(t, rep.Sensitivity)
	assert.Equal(t, "m1", rep.Sensitivity.MarketID)
	require.NotEmpty(t, rep.Risks)
	assert.Equal(t, "Price Volatility", rep.Risks[0].Title)

	var actions []string
	for _, st := range res.Trace.Steps {
		actions = append(actions, st.Action)
	}
	assert.Equal(t, []string{
		"fetchMarketPrices",
		"generatePredictions",
		"generateRoutes",
		"calculateLosses",
		"generateRecommendation",
		"compareRevenue",
	}, actions)
	assert.Equal(t, MarketAnalystAgent, res.Trace.Steps[0].Agent)
	assert.Equal(t, SupervisorAgent, res.Trace.Steps[5].Agent)

	require.Len(t, history.entries, 1)
	e := history.entries[0]
	assert.Equal(t, rep.RunID, e.ID)
	assert.Equal(t, "farmer-7", e.UserID)
	assert.Equal(t, domain.RecommendStore, e.Type)
	assert.Equal(t, rep.Recommendation.NetProfit, e.NetProfit)
}

func TestSupervisorFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Supervisor, *domain.FarmContext)
	}{
		{
			name:   "unknown crop",
			mutate: func(_ *Supervisor, f *domain.FarmContext) { f.CropID = "saffron" },
		},
		{
			name:   "unknown storage",
			mutate: func(_ *Supervisor, f *domain.FarmContext) { f.StorageType = "Cave" },
		},
		{
			name: "quote source down",
			mutate: func(s *Supervisor, _ *domain.FarmContext) {
				s.Market.Quotes = fakeQuotes{err: errors.New("timeout")}
			},
		},
		{
			name: "unroutable market",
			mutate: func(s *Supervisor, _ *domain.FarmContext) {
				s.Logistics.Distances = distance.NewMockDistanceProvider(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := &fakeHistory{}
			s := newTestSupervisor(history)
			farm := wheatFarm()
			tt.mutate(s, &farm)

			res := s.Run(context.Background(), farm)
			assert.False(t, res.Success)
			require.NotNil(t, res.Data)
			assert.Equal(t, domain.FallbackRecommendation(testNow), res.Data.Recommendation)

			steps := res.Trace.Steps
			require.NotEmpty(t, steps)
			assert.Equal(t, "error", steps[len(steps)-1].Action)
			assert.Empty(t, history.entries)
		})
	}
}

func TestSupervisorHistoryIsOptional(t *testing.T) {
	farm := wheatFarm()
	farm.UserID = ""
	history := &fakeHistory{}

	res := newTestSupervisor(history).Run(context.Background(), farm)
	assert.True(t, res.Success)
	assert.Empty(t, history.entries)

	failing := &fakeHistory{err: errors.New("disk full")}
	res = newTestSupervisor(failing).Run(context.Background(), wheatFarm())
	assert.True(t, res.Success)

	res = newTestSupervisor(nil).Run(context.Background(), wheatFarm())
	assert.True(t, res.Success)
}

func TestSupervisorKeepsRecommendationWhenSensitivityFails(t *testing.T) {
	history := &fakeHistory{}
	s := newTestSupervisor(history)
	s.sensitivity = func(SensitivityInputs) (*domain.SensitivityReport, error) {
		return nil, errors.New("sensitivity: no curve")
	}

	res := s.Run(context.Background(), wheatFarm())
	require.True(t, res.Success)
	rep := res.Data
	assert.Equal(t, domain.RecommendStore, rep.Recommendation.Type)
	assert.Equal(t, "Azadpur Mandi", rep.Recommendation.TargetMarket)
	assert.Nil(t, rep.Sensitivity)
	assert.NotEmpty(t, rep.Risks)

	last := res.Trace.Steps[len(res.Trace.Steps)-1]
	assert.Equal(t, "skipSensitivity", last.Action)
	assert.Len(t, history.entries, 1)
}
