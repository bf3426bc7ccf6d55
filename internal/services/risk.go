package services

import (
	"fmt"
	"harvest-planner/internal/domain"
)

const perishableShelfLifeDays = 30

// AssessRisks lists the factors that could undermine a recommendation.
func AssessRisks(markets []domain.Market, crop domain.Crop, storage domain.StorageCondition) []domain.Risk {
	var risks []domain.Risk

	var volatile []string
	for _, m := range markets {
		if m.Volatility == domain.LevelHigh {
			volatile = append(volatile, m.Name)
		}
	}
	if len(volatile) > 0 {
		risks = append(risks, domain.Risk{
			Level:       domain.LevelHigh,
			Title:       "Price Volatility",
			Description: fmt.Sprintf("%d market(s) showing high price volatility", len(volatile)),
			Markets:     volatile,
		})
	}

	if storage.LossMultiplier > 1 {
		risks = append(risks, domain.Risk{
			Level:       domain.LevelMedium,
			Title:       "Storage Degradation",
			Description: fmt.Sprintf("%s storage increases loss rate by %g%%", storage.Type, round2((storage.LossMultiplier-1)*100)),
		})
	}

	if crop.ID != "" {
		level := domain.LevelLow
		if crop.ShelfLifeDays < perishableShelfLifeDays {
			level = domain.LevelHigh
		}
		risks = append(risks, domain.Risk{
			Level:       level,
			Title:       "Crop Shelf Life",
			Description: fmt.Sprintf("%s has %d day shelf life with %g%% daily loss", crop.Name, crop.ShelfLifeDays, crop.LossRatePerDay),
		})
	}

	return risks
}
