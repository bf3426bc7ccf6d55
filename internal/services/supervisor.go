package services

import (
	"context"
	"fmt"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/logger"
	"harvest-planner/internal/ports"
	"harvest-planner/internal/reference"
	"time"

	"github.com/google/uuid"
)

const (
	SupervisorAgent = "SupervisorAgent"

	marketHorizonDays  = 7
	storageHorizonDays = 30
	logisticsMarkets   = 3
)

// Supervisor runs the fixed market -> logistics -> storage -> recommendation
// pipeline for one farm.
type Supervisor struct {
	Market    *MarketAnalyst
	Logistics *LogisticsCoordinator
	Storage   *StorageStrategist
	// Optional; runs carrying a user id are recorded when set.
	History ports.RecommendationRepository
	Now     func() time.Time

	sensitivity func(SensitivityInputs) (*domain.SensitivityReport, error)
}

// Run never returns an error. Any failure is recorded in the trace and a
// fallback recommendation is returned with Success=false.
func (s *Supervisor) Run(ctx context.Context, farm domain.FarmContext) domain.Result[*domain.AnalysisReport] {
	now := nowFunc(s.Now)
	rec := domain.NewRecorder(SupervisorAgent, now)
	report := &domain.AnalysisReport{RunID: uuid.NewString(), Farm: farm}

	if err := s.run(ctx, farm, report, rec); err != nil {
		logger.Warnf(ctx, "analysis run %s fell back: %v", report.RunID, err)
		rec.Step("error", map[string]string{"error": err.Error()})
		report.Recommendation = domain.FallbackRecommendation(now())
		return domain.Wrap(rec, false, report)
	}

	s.record(ctx, farm, report)
	return domain.Wrap(rec, true, report)
}

func (s *Supervisor) run(ctx context.Context, farm domain.FarmContext, report *domain.AnalysisReport, rec *domain.Recorder) error {
	in, err := ResolveInputs(farm)
	if err != nil {
		return err
	}

	marketRes, err := s.Market.Analyze(ctx, farm.CropID, marketHorizonDays)
	rec.Append(marketRes.Trace.Steps...)
	if err != nil {
		return err
	}
	analysis := marketRes.Data
	report.Market = analysis

	top := analysis.CurrentPrices[:min(logisticsMarkets, len(analysis.CurrentPrices))]
	names := make([]string, 0, len(top))
	for _, p := range top {
		names = append(names, p.MarketName)
	}

	logisticsRes, err := s.Logistics.Plan(ctx, farm.Location, names, farm.Quantity)
	rec.Append(logisticsRes.Trace.Steps...)
	if err != nil {
		return err
	}
	plan := logisticsRes.Data
	report.Logistics = plan

	storageRes, err := s.Storage.Analyze(ctx, StorageRequest{
		CropID:       farm.CropID,
		InitialValue: farm.Quantity * analysis.CurrentPrices[0].Price,
		Temperature:  farm.Temperature,
		Humidity:     farm.Humidity,
	}, storageHorizonDays)
	rec.Append(storageRes.Trace.Steps...)
	if err != nil {
		return err
	}
	report.Storage = storageRes.Data

	report.Recommendation = Recommend(*analysis, *plan, *storageRes.Data, farm.Quantity, nowFunc(s.Now)())
	rec.Step("generateRecommendation", map[string]any{
		"type":         report.Recommendation.Type,
		"targetMarket": report.Recommendation.TargetMarket,
	})

	report.Markets = marketsFromRun(*analysis, *plan, top)
	report.Comparisons, err = CompareMarkets(in, report.Markets)
	if err != nil {
		return err
	}
	rec.Step("compareRevenue", map[string]int{"comparisons": len(report.Comparisons)})

	target := report.Markets[0]
	for _, m := range report.Markets {
		if m.Name == report.Recommendation.TargetMarket {
			target = m
			break
		}
	}
	sensitivity := s.sensitivity
	if sensitivity == nil {
		sensitivity = Sensitivity
	}
	// The recommendation stands without the curve.
	if report.Sensitivity, err = sensitivity(SensitivityInputs{RevenueInputs: in, Market: target}); err != nil {
		logger.Warnf(ctx, "analysis run %s: %v", report.RunID, err)
		rec.Step("skipSensitivity", map[string]string{"error": err.Error()})
		report.Sensitivity = nil
	}

	report.Risks = AssessRisks(report.Markets, in.Crop, in.Storage)
	return nil
}

func (s *Supervisor) record(ctx context.Context, farm domain.FarmContext, report *domain.AnalysisReport) {
	if s.History == nil || farm.UserID == "" {
		return
	}

	r := report.Recommendation
	entry := domain.HistoryEntry{
		ID:              report.RunID,
		UserID:          farm.UserID,
		CropID:          farm.CropID,
		Quantity:        farm.Quantity,
		Location:        farm.Location,
		StorageType:     farm.StorageType,
		Type:            r.Type,
		TargetMarket:    r.TargetMarket,
		ExpectedRevenue: r.ExpectedRevenue,
		NetProfit:       r.NetProfit,
		Confidence:      r.Confidence,
		CreatedAt:       nowFunc(s.Now)(),
	}
	if err := s.History.Save(ctx, farm, entry); err != nil {
		logger.Errorf(ctx, "save recommendation history: %v", err)
	}
}

// ResolveInputs looks the farm's selections up in the rate tables.
func ResolveInputs(farm domain.FarmContext) (RevenueInputs, error) {
	crop, ok := reference.CropByID(farm.CropID)
	if !ok {
		return RevenueInputs{}, fmt.Errorf("%w: %q", domain.ErrUnknownCrop, farm.CropID)
	}

	storage, ok := reference.StorageByType(farm.StorageType)
	if !ok {
		return RevenueInputs{}, fmt.Errorf("%w: %q", domain.ErrUnknownStorage, farm.StorageType)
	}

	vehicle := farm.VehicleType
	if vehicle == "" {
		vehicle = reference.DefaultHireVehicle
	}
	transport, ok := reference.TransportByVehicle(vehicle)
	if !ok {
		return RevenueInputs{}, fmt.Errorf("%w: unknown vehicle %q", domain.ErrInvalidInput, vehicle)
	}

	return RevenueInputs{
		Crop:      crop,
		Quantity:  farm.Quantity,
		Transport: transport,
		Storage:   storage,
	}, nil
}

// marketsFromRun joins quotes with their planned route and horizon prediction.
func marketsFromRun(analysis domain.MarketAnalysis, plan domain.LogisticsPlan, quotes []domain.MarketPrice) []domain.Market {
	out := make([]domain.Market, 0, len(quotes))
	for i, q := range quotes {
		m := domain.Market{
			ID:                  q.MarketID,
			Name:                q.MarketName,
			CurrentPrice:        q.Price,
			ProjectedPrice7Days: q.Price,
			Volatility:          domain.ClassifyVolatility(q.Volatility / 100),
			LastUpdated:         q.Date,
		}
		if p, ok := analysis.PredictedAt(q.MarketID); ok {
			m.ProjectedPrice7Days = p.Price
		}
		if i < len(plan.Routes) {
			m.Location = plan.Routes[i].To
			m.DistanceKm = plan.Routes[i].DistanceKm
		}
		out = append(out, m)
	}
	return out
}
