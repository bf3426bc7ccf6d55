package domain

import "time"

// FarmContext is the user input for one analysis run. Quantity is in quintals.
// Temperature and Humidity are optional storage readings.
type FarmContext struct {
	UserID      string   `json:"userId,omitempty"`
	CropID      string   `json:"crop"`
	Quantity    float64  `json:"quantity"`
	Location    string   `json:"location"`
	StorageType string   `json:"storageType"`
	VehicleType string   `json:"vehicleType,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
}

// AnalysisReport bundles every artefact of a completed run.
type AnalysisReport struct {
	RunID          string              `json:"runId"`
	Farm           FarmContext         `json:"farmContext"`
	Market         *MarketAnalysis     `json:"marketAnalysis,omitempty"`
	Logistics      *LogisticsPlan      `json:"logistics,omitempty"`
	Storage        *StorageAnalysis    `json:"storage,omitempty"`
	Markets        []Market            `json:"markets,omitempty"`
	Comparisons    []RevenueComparison `json:"comparisons,omitempty"`
	Sensitivity    *SensitivityReport  `json:"sensitivity,omitempty"`
	Risks          []Risk              `json:"risks,omitempty"`
	Recommendation Recommendation      `json:"recommendation"`
}

// HistoryEntry is a persisted recommendation for a user.
type HistoryEntry struct {
	ID              string             `db:"id" json:"id"`
	UserID          string             `db:"user_id" json:"userId"`
	CropID          string             `db:"crop_id" json:"crop"`
	Quantity        float64            `db:"quantity" json:"quantity"`
	Location        string             `db:"location" json:"location"`
	StorageType     string             `db:"storage_type" json:"storageType"`
	Type            RecommendationType `db:"recommendation_type" json:"recommendationType"`
	TargetMarket    string             `db:"target_market" json:"targetMarket"`
	ExpectedRevenue float64            `db:"expected_revenue" json:"expectedRevenue"`
	NetProfit       float64            `db:"net_profit" json:"netProfit"`
	Confidence      float64            `db:"confidence" json:"confidence"`
	CreatedAt       time.Time          `db:"created_at" json:"createdAt"`
}
