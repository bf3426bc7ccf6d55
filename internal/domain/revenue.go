package domain

// Scenario is one of the two fixed evaluation points.
type Scenario string

const (
	ScenarioNow      Scenario = "now"
	ScenarioSevenDay Scenario = "7days"
)

// Days returns the storage horizon the scenario implies.
func (s Scenario) Days() int {
	if s == ScenarioSevenDay {
		return 7
	}
	return 0
}

type RevenueComparison struct {
	MarketID      string   `json:"marketId"`
	MarketName    string   `json:"marketName"`
	Scenario      Scenario `json:"scenario"`
	GrossRevenue  float64  `json:"grossRevenue"`
	TransportCost float64  `json:"transportCost"`
	StorageCost   float64  `json:"storageCost"`
	StorageLoss   float64  `json:"storageLoss"`
	NetRevenue    float64  `json:"netRevenue"`
	ProfitMargin  float64  `json:"profitMargin"`
}
