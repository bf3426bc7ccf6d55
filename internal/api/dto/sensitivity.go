package dto

import "harvest-planner/internal/domain"

// SensitivityRequest asks for the day-by-day revenue curve of one market.
// Days, FuelMultiplier and LossMultiplier fall back to defaults when zero.
type SensitivityRequest struct {
	Crop        string  `json:"crop" validate:"required,max=64"`
	Quantity    float64 `json:"quantity" validate:"gt=0,lte=1000000"`
	StorageType string  `json:"storageType" validate:"required,max=64"`
	VehicleType string  `json:"vehicleType" validate:"omitempty,max=64"`

	MarketID            string  `json:"marketId" validate:"omitempty,max=64"`
	MarketName          string  `json:"marketName" validate:"omitempty,max=200"`
	CurrentPrice        float64 `json:"currentPrice" validate:"gt=0"`
	ProjectedPrice7Days float64 `json:"projectedPrice7Days" validate:"gt=0"`
	Distance            float64 `json:"distance" validate:"gte=0,lte=5000"`

	Days           int     `json:"days" validate:"omitempty,min=1,max=90"`
	FuelMultiplier float64 `json:"fuelMultiplier" validate:"omitempty,gt=0,lte=10"`
	LossMultiplier float64 `json:"lossMultiplier" validate:"omitempty,gt=0,lte=10"`
}

func (r SensitivityRequest) Market() domain.Market {
	return domain.Market{
		ID:                  r.MarketID,
		Name:                r.MarketName,
		DistanceKm:          r.Distance,
		CurrentPrice:        r.CurrentPrice,
		ProjectedPrice7Days: r.ProjectedPrice7Days,
	}
}
