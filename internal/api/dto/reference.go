package dto

import "harvest-planner/internal/domain"

type ReferenceResponse struct {
	Crops             []domain.Crop             `json:"crops"`
	StorageConditions []domain.StorageCondition `json:"storageConditions"`
	TransportRates    []domain.TransportRate    `json:"transportRates"`
}

type HistoryResponse struct {
	UserID  string                `json:"userId"`
	Entries []domain.HistoryEntry `json:"entries"`
}
