package dto

import (
	"harvest-planner/internal/domain"
	"strings"
)

// AnalysisRequest is the farm form submitted for a sell-or-store analysis.
type AnalysisRequest struct {
	UserID      string   `json:"userId" validate:"omitempty,max=128"`
	Crop        string   `json:"crop" validate:"required,max=64"`
	Quantity    float64  `json:"quantity" validate:"gt=0,lte=1000000"`
	Location    string   `json:"location" validate:"required,max=200"`
	StorageType string   `json:"storageType" validate:"required,max=64"`
	VehicleType string   `json:"vehicleType" validate:"omitempty,max=64"`
	Temperature *float64 `json:"temperature" validate:"omitempty,gte=-30,lte=60"`
	Humidity    *float64 `json:"humidity" validate:"omitempty,gte=0,lte=100"`
}

func (r AnalysisRequest) FarmContext() domain.FarmContext {
	return domain.FarmContext{
		UserID:      strings.TrimSpace(r.UserID),
		CropID:      strings.ToLower(strings.TrimSpace(r.Crop)),
		Quantity:    r.Quantity,
		Location:    strings.TrimSpace(r.Location),
		StorageType: strings.TrimSpace(r.StorageType),
		VehicleType: strings.TrimSpace(r.VehicleType),
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
	}
}
