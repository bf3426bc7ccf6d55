package reference

import "harvest-planner/internal/domain"

// knownDistances maps "origin-destination" (lower-cased) to road kilometres.
var knownDistances = map[string]float64{
	"delhi-mumbai":     1400,
	"delhi-bangalore":  2150,
	"mumbai-bangalore": 1000,
	"delhi-chandigarh": 250,
	"mumbai-pune":      150,
}

func KnownDistance(key string) (float64, bool) {
	km, ok := knownDistances[key]
	return km, ok
}

// RoadCondition pairs a road tag with the fraction of cruising speed it allows.
type RoadCondition struct {
	Tag         string
	SpeedFactor float64
}

var roadConditions = []RoadCondition{
	{Tag: domain.RoadHighway, SpeedFactor: 1.0},
	{Tag: domain.RoadState, SpeedFactor: 0.8},
	{Tag: domain.RoadVillage, SpeedFactor: 0.5},
}

const (
	CruisingSpeedKmh   = 50.0
	TollPerKm          = 0.05
	WaypointAfterKm    = 500.0
	RefrigerationAbove = 50.0 // quintals
)

func RoadConditions() []RoadCondition {
	out := make([]RoadCondition, len(roadConditions))
	copy(out, roadConditions)
	return out
}
