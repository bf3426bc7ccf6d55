package services

import (
	"context"
	"fmt"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/obs"
	"harvest-planner/internal/ports"
	"harvest-planner/internal/reference"
	"math"
	"time"
)

const LogisticsCoordinatorAgent = "LogisticsCoordinatorAgent"

// LogisticsCoordinator plans one route from the farm to each candidate market.
type LogisticsCoordinator struct {
	Distances ports.DistanceProvider
	Rand      ports.RandomSource
	// Vehicle class priced by the transport estimator; defaults to "truck".
	Vehicle string
	Now     func() time.Time
}

func (c *LogisticsCoordinator) Plan(
	ctx context.Context,
	origin string,
	destinations []string,
	quantity float64,
) (res domain.Result[*domain.LogisticsPlan], err error) {
	defer obs.Time(ctx, "logistics.Plan")(&err)

	now := nowFunc(c.Now)
	rec := domain.NewRecorder(LogisticsCoordinatorAgent, now)

	vehicle := c.Vehicle
	if vehicle == "" {
		vehicle = reference.DefaultLogisticsVehicle
	}

	routes := make([]domain.Route, 0, len(destinations))
	for _, dest := range destinations {
		r, err := c.route(ctx, origin, dest, quantity, vehicle)
		if err != nil {
			rec.Step("error", map[string]string{"error": err.Error()})
			return domain.Wrap[*domain.LogisticsPlan](rec, false, nil), fmt.Errorf("plan logistics: %w", err)
		}
		routes = append(routes, r)
	}
	rec.Step("generateRoutes", map[string]any{
		"origin":       origin,
		"destinations": destinations,
		"routesCount":  len(routes),
	})

	var total, longest float64
	for _, r := range routes {
		total += r.TransportCost
		longest = math.Max(longest, r.EstimatedHours)
	}

	special := []string{}
	if quantity > reference.RefrigerationAbove {
		special = append(special, "refrigeration")
	}

	plan := &domain.LogisticsPlan{
		Routes:           routes,
		TotalCost:        total,
		EstimatedArrival: now().Add(time.Duration(longest * float64(time.Hour))),
		Requirements: domain.TransportRequirements{
			VehicleType: vehicle,
			// Whole tonnes, expressed in quintals.
			Capacity:            math.Ceil(quantity/10) * 10,
			SpecialRequirements: special,
		},
	}

	return domain.Wrap(rec, true, plan), nil
}

func (c *LogisticsCoordinator) route(ctx context.Context, origin, dest string, quantity float64, vehicle string) (domain.Route, error) {
	km, err := c.Distances.Distance(ctx, origin, dest)
	if err != nil {
		return domain.Route{}, fmt.Errorf("distance %q -> %q: %w", origin, dest, err)
	}

	roads := reference.RoadConditions()
	road := roads[min(int(c.Rand.Float64()*float64(len(roads))), len(roads)-1)]

	speed := reference.CruisingSpeedKmh * road.SpeedFactor

	waypoints := []string{}
	if km > reference.WaypointAfterKm {
		waypoints = append(waypoints, fmt.Sprintf("Waypoint near %dkm", int(km/2)))
	}

	quote := EstimateTransportCost(c.Rand, km, quantity, vehicle)

	return domain.Route{
		From:           origin,
		To:             dest,
		DistanceKm:     km,
		EstimatedHours: round1(km / speed),
		TransportCost:  quote.Cost,
		Details: domain.RouteDetails{
			Waypoints:      waypoints,
			RoadConditions: []string{road.Tag},
			Tolls:          roundWhole(km * reference.TollPerKm),
		},
	}, nil
}
