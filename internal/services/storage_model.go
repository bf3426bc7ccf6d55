package services

import (
	"harvest-planner/internal/domain"
	"harvest-planner/internal/reference"
	"math"
)

const (
	minLossRate = 0.1
	maxLossRate = 5.0

	idealTemperature = 20.0
	idealHumidity    = 60.0
)

// AdjustedLossRate derives the daily loss rate (% per day) for a crop from
// its default and the distance of the storage climate from ideal.
// A nil reading contributes nothing.
func AdjustedLossRate(cropID string, temperature, humidity *float64) float64 {
	rate := reference.DefaultLossRate(cropID)
	if temperature != nil {
		rate += math.Abs(idealTemperature-*temperature) * 0.05
	}
	if humidity != nil {
		rate += math.Abs(idealHumidity-*humidity) * 0.02
	}
	return clamp(rate, minLossRate, maxLossRate)
}

// ProjectValue compounds a daily loss over days and reports each day 0..days.
func ProjectValue(days int, initialValue, dailyLossRate float64) []domain.StorageProjection {
	if days < 0 {
		days = 0
	}

	out := make([]domain.StorageProjection, 0, days+1)
	value := initialValue
	fraction := 1.0
	for day := 0; day <= days; day++ {
		if day > 0 {
			value -= value * (dailyLossRate / 100)
			fraction -= fraction * (dailyLossRate / 100)
		}
		out = append(out, domain.StorageProjection{
			Day:               day,
			RemainingValuePct: round2(fraction * 100),
			CumulativeLoss:    round2(initialValue - value),
		})
	}
	return out
}

// MaxStorageDays is the sooner of shelf life and the day compounding decay
// would nominally exhaust the value.
func MaxStorageDays(cropID string, dailyLossRate float64) int {
	shelf := reference.DefaultShelfLife(cropID)
	if dailyLossRate <= 0 {
		return shelf
	}
	return min(shelf, int(math.Ceil(100/dailyLossRate)))
}
