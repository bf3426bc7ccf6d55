package domain

// SensitivityPoint is the projected net revenue when selling on Day.
type SensitivityPoint struct {
	Day           int     `json:"day"`
	Price         float64 `json:"price"`
	LossPct       float64 `json:"lossPct"`
	GrossRevenue  float64 `json:"grossRevenue"`
	TransportCost float64 `json:"transportCost"`
	StorageCost   float64 `json:"storageCost"`
	NetRevenue    float64 `json:"netRevenue"`
}

// SensitivityReport is the day-by-day net revenue curve for one market.
// BreakEvenDay is -1 when revenue never drops below 95% of the peak after OptimalDay.
type SensitivityReport struct {
	MarketID     string             `json:"marketId"`
	Points       []SensitivityPoint `json:"points"`
	OptimalDay   int                `json:"optimalDay"`
	PeakRevenue  float64            `json:"peakRevenue"`
	BreakEvenDay int                `json:"breakEvenDay"`
}
