package reference

import (
	"harvest-planner/internal/domain"
	"strings"
)

var storageConditions = []domain.StorageCondition{
	{Type: "Open Air", LossMultiplier: 1.5, CostPerDay: 0, Description: "No additional storage cost, but higher losses"},
	{Type: "Covered Shed", LossMultiplier: 1.0, CostPerDay: 2, Description: "Basic protection from weather"},
	{Type: "Warehouse", LossMultiplier: 0.6, CostPerDay: 5, Description: "Temperature controlled, lower losses"},
	{Type: "Cold Storage", LossMultiplier: 0.2, CostPerDay: 15, Description: "Best for perishables, minimal losses"},
}

// Ambient readings assumed when the farmer supplies none.
const (
	DefaultTemperature = 25.0
	DefaultHumidity    = 60.0
)

func StorageConditions() []domain.StorageCondition {
	out := make([]domain.StorageCondition, len(storageConditions))
	copy(out, storageConditions)
	return out
}

// StorageByType accepts either the display label ("Cold Storage") or its
// snake-case id ("cold_storage").
func StorageByType(t string) (domain.StorageCondition, bool) {
	key := labelKey(t)
	for _, s := range storageConditions {
		if labelKey(s.Type) == key {
			return s, true
		}
	}
	return domain.StorageCondition{}, false
}

func labelKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
