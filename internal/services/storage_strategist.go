package services

import (
	"context"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/obs"
	"harvest-planner/internal/reference"
	"time"
)

const StorageStrategistAgent = "StorageStrategistAgent"

// StorageRequest describes the harvest being held. InitialValue is in currency.
type StorageRequest struct {
	CropID       string
	InitialValue float64
	Temperature  *float64
	Humidity     *float64
}

type StorageStrategist struct {
	Now func() time.Time
}

// Analyze projects storage losses over days. It is pure arithmetic and cannot fail;
// the error return keeps it interchangeable with the other pipeline steps.
func (s *StorageStrategist) Analyze(
	ctx context.Context,
	req StorageRequest,
	days int,
) (res domain.Result[*domain.StorageAnalysis], err error) {
	defer obs.Time(ctx, "storage.Analyze")(&err)

	rec := domain.NewRecorder(StorageStrategistAgent, nowFunc(s.Now))

	rate := AdjustedLossRate(req.CropID, req.Temperature, req.Humidity)
	projections := ProjectValue(days, req.InitialValue, rate)
	rec.Step("calculateLosses", map[string]any{
		"days":          days,
		"initialValue":  req.InitialValue,
		"dailyLossRate": rate,
	})

	temperature := reference.DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	humidity := reference.DefaultHumidity
	if req.Humidity != nil {
		humidity = *req.Humidity
	}

	analysis := &domain.StorageAnalysis{
		Current: domain.StorageConditions{
			Temperature:   temperature,
			Humidity:      humidity,
			ShelfLifeDays: reference.DefaultShelfLife(req.CropID),
			DailyLossRate: rate,
		},
		Projections:    projections,
		MaxStorageDays: MaxStorageDays(req.CropID, rate),
	}

	return domain.Wrap(rec, true, analysis), nil
}
