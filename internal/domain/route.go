package domain

import "time"

// Road condition tags attached to a route.
const (
	RoadHighway = "highway"
	RoadState   = "state_road"
	RoadVillage = "village_road"
)

type RouteDetails struct {
	Waypoints      []string `json:"waypoints"`
	RoadConditions []string `json:"roadConditions"`
	Tolls          float64  `json:"tolls"`
}

// Route is a single farm -> market leg produced by the logistics step.
type Route struct {
	From           string       `json:"from"`
	To             string       `json:"to"`
	DistanceKm     float64      `json:"distance"`
	EstimatedHours float64      `json:"estimatedTime"`
	TransportCost  float64      `json:"transportCost"`
	Details        RouteDetails `json:"routeDetails"`
}

// TransportQuote is the priced result of a single transport estimate.
type TransportQuote struct {
	Cost    float64 `json:"cost"`
	Vehicle string  `json:"vehicle"`
}

// TransportRequirements summarizes what kind of vehicle the plan needs.
// Capacity is in quintals.
type TransportRequirements struct {
	VehicleType         string   `json:"vehicleType"`
	Capacity            float64  `json:"capacity"`
	SpecialRequirements []string `json:"specialRequirements"`
}

type LogisticsPlan struct {
	Routes           []Route               `json:"routes"`
	TotalCost        float64               `json:"totalCost"`
	EstimatedArrival time.Time             `json:"estimatedArrival"`
	Requirements     TransportRequirements `json:"transportRequirements"`
}

// FirstRouteCost is the transport cost used by the recommendation; zero when no routes were planned.
func (p LogisticsPlan) FirstRouteCost() float64 {
	if len(p.Routes) == 0 {
		return 0
	}
	return p.Routes[0].TransportCost
}
