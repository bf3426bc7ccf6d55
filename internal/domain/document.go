package domain

import "time"

// AnalysisDocument is the JSON document returned by the external generation service.
type AnalysisDocument struct {
	GeneratedMarkets []Market               `json:"generatedMarkets"`
	CropInfo         DocumentCrop           `json:"cropInfo"`
	StorageInfo      DocumentStorage        `json:"storageInfo"`
	TransportInfo    DocumentTransport      `json:"transportInfo"`
	WeatherData      *WeatherData           `json:"weatherData,omitempty"`
	PriceHistory     []PriceHistoryPoint    `json:"priceHistory"`
	AgentSteps       []AgentStep            `json:"agentSteps"`
	Comparisons      []DocumentComparison   `json:"comparisons"`
	Recommendation   DocumentRecommendation `json:"recommendation"`
	MarketInsights   *MarketInsights        `json:"marketInsights,omitempty"`
}

type DocumentCrop struct {
	Name           string  `json:"name"`
	ShelfLifeDays  int     `json:"shelfLife"`
	LossRatePerDay float64 `json:"lossRatePerDay"`
	BasePrice      float64 `json:"basePrice"`
}

type DocumentStorage struct {
	Type           string  `json:"type"`
	LossMultiplier float64 `json:"lossMultiplier"`
	CostPerDay     float64 `json:"costPerDay"`
}

type DocumentTransport struct {
	VehicleType string  `json:"vehicleType"`
	RatePerKm   float64 `json:"ratePerKm"`
	Capacity    float64 `json:"capacity"`
}

type WeatherReading struct {
	Day         int     `json:"day,omitempty"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
}

type WeatherImpact struct {
	Severity           string  `json:"severity"`
	Description        string  `json:"description"`
	DelayRisk          float64 `json:"delayRisk,omitempty"`
	AdditionalLossRate float64 `json:"additionalLossRate,omitempty"`
}

type WeatherData struct {
	Location        string           `json:"location"`
	Current         WeatherReading   `json:"current"`
	Forecast        []WeatherReading `json:"forecast"`
	TransportImpact WeatherImpact    `json:"transportImpact"`
	StorageImpact   WeatherImpact    `json:"storageImpact"`
}

type PriceHistoryPoint struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Volume float64 `json:"volume"`
}

// AgentStep is a reasoning step narrated by the generation service.
type AgentStep struct {
	Agent     string `json:"agent"`
	Action    string `json:"action"`
	Reasoning string `json:"reasoning"`
}

type DocumentComparison struct {
	RevenueComparison
	Location   string  `json:"location"`
	DistanceKm float64 `json:"distance"`
	Volatility Level   `json:"volatility"`
	Demand     Level   `json:"demand"`
}

type DocumentRecommendation struct {
	BestMarketID string   `json:"bestMarketId"`
	BestScenario Scenario `json:"bestScenario"`
	Reasoning    string   `json:"reasoning"`
	RiskWarning  string   `json:"riskWarning,omitempty"`
}

type MarketInsights struct {
	SeasonalTrend   string `json:"seasonalTrend"`
	DemandOutlook   string `json:"demandOutlook"`
	PriceVolatility string `json:"priceVolatility"`
}

// Season classifies a date into the Indian agricultural season the
// generation service is prompted with.
func Season(t time.Time) string {
	m := int(t.Month()) - 1
	switch {
	case m >= 5 && m <= 9:
		return "monsoon"
	case m >= 10 || m <= 1:
		return "winter"
	default:
		return "summer"
	}
}
