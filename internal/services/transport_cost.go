package services

import (
	"harvest-planner/internal/domain"
	"harvest-planner/internal/ports"
	"harvest-planner/internal/reference"
)

// EstimateTransportCost prices moving quantity quintals over km with the given
// vehicle class, including a uniform ±10% market variation.
func EstimateTransportCost(rng ports.RandomSource, km, quantity float64, vehicle string) domain.TransportQuote {
	tonnes := quantity / 10
	base := km * reference.VehicleRatePerTonneKm(vehicle) * tonnes
	variation := 0.9 + rng.Float64()*0.2

	return domain.TransportQuote{
		Cost:    roundWhole(base * variation),
		Vehicle: vehicle,
	}
}
