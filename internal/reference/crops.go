package reference

import (
	"harvest-planner/internal/domain"
	"strings"
)

var crops = []domain.Crop{
	{ID: "wheat", Name: "Wheat", NameHindi: "गेहूं", ShelfLifeDays: 180, LossRatePerDay: 0.05, BasePrice: 2200, Unit: "quintal"},
	{ID: "rice", Name: "Rice (Paddy)", NameHindi: "धान", ShelfLifeDays: 120, LossRatePerDay: 0.08, BasePrice: 2100, Unit: "quintal"},
	{ID: "tomato", Name: "Tomato", NameHindi: "टमाटर", ShelfLifeDays: 14, LossRatePerDay: 3.5, BasePrice: 1800, Unit: "quintal"},
	{ID: "onion", Name: "Onion", NameHindi: "प्याज", ShelfLifeDays: 60, LossRatePerDay: 0.8, BasePrice: 1500, Unit: "quintal"},
	{ID: "potato", Name: "Potato", NameHindi: "आलू", ShelfLifeDays: 90, LossRatePerDay: 0.5, BasePrice: 1200, Unit: "quintal"},
	{ID: "soybean", Name: "Soybean", NameHindi: "सोयाबीन", ShelfLifeDays: 150, LossRatePerDay: 0.1, BasePrice: 4500, Unit: "quintal"},
}

// Default storage decay rates (% of value per day) used by the storage step,
// before temperature and humidity adjustments.
var defaultLossRates = map[string]float64{
	"wheat":   0.5,
	"rice":    0.8,
	"corn":    0.6,
	"soybean": 0.7,
	"tomato":  3.5,
	"onion":   0.8,
	"potato":  0.5,
}

var defaultShelfLife = map[string]int{
	"wheat":   180,
	"rice":    210,
	"corn":    150,
	"soybean": 120,
	"tomato":  14,
	"onion":   60,
	"potato":  90,
}

const (
	fallbackLossRate  = 1.0
	fallbackShelfLife = 90
)

// Crops returns a copy of the crop catalogue.
func Crops() []domain.Crop {
	out := make([]domain.Crop, len(crops))
	copy(out, crops)
	return out
}

func CropByID(id string) (domain.Crop, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, c := range crops {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Crop{}, false
}

// DefaultLossRate returns the base daily loss rate for a crop, 1.0 when unknown.
func DefaultLossRate(cropID string) float64 {
	if r, ok := defaultLossRates[strings.ToLower(strings.TrimSpace(cropID))]; ok {
		return r
	}
	return fallbackLossRate
}

// DefaultShelfLife returns the shelf life in days for a crop, 90 when unknown.
func DefaultShelfLife(cropID string) int {
	if d, ok := defaultShelfLife[strings.ToLower(strings.TrimSpace(cropID))]; ok {
		return d
	}
	return fallbackShelfLife
}
