package reference

import (
	"harvest-planner/internal/domain"
	"strings"
)

var transportRates = []domain.TransportRate{
	{VehicleType: "Tractor Trolley", RatePerKm: 12, Capacity: 20, LoadingHours: 1.5},
	{VehicleType: "Mini Truck (Tata Ace)", RatePerKm: 18, Capacity: 15, LoadingHours: 1},
	{VehicleType: "Medium Truck", RatePerKm: 25, Capacity: 50, LoadingHours: 2},
	{VehicleType: "Large Truck", RatePerKm: 35, Capacity: 100, LoadingHours: 3},
}

// DefaultHireVehicle is used for revenue comparisons when the farmer does not pick one.
const DefaultHireVehicle = "Medium Truck"

// Fuel economics used by the sensitivity analysis.
const (
	FuelPricePerLiter = 105.0
	KmPerLiter        = 8.0
)

// Per tonne-km rates for the logistics estimate.
var vehicleRates = map[string]float64{
	"truck":   1.2,
	"tractor": 1.0,
	"pickup":  1.5,
}

const (
	DefaultLogisticsVehicle = "truck"
	fallbackVehicleRate     = 1.0
)

func TransportRates() []domain.TransportRate {
	out := make([]domain.TransportRate, len(transportRates))
	copy(out, transportRates)
	return out
}

// TransportByVehicle looks a hire vehicle up by its display label, case-insensitively.
func TransportByVehicle(v string) (domain.TransportRate, bool) {
	key := labelKey(v)
	for _, r := range transportRates {
		if labelKey(r.VehicleType) == key {
			return r, true
		}
	}
	return domain.TransportRate{}, false
}

// VehicleRatePerTonneKm returns the logistics rate for a vehicle class, 1.0 when unknown.
func VehicleRatePerTonneKm(vehicle string) float64 {
	if r, ok := vehicleRates[strings.ToLower(strings.TrimSpace(vehicle))]; ok {
		return r
	}
	return fallbackVehicleRate
}
