package domain

import "time"

// Level is a coarse low/medium/high classification used for display and risk messages.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Market is one mandi evaluated during an analysis run.
type Market struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	State               string    `json:"state,omitempty"`
	DistanceKm          float64   `json:"distance"`
	CurrentPrice        float64   `json:"currentPrice"`
	ProjectedPrice7Days float64   `json:"projectedPrice7Days"`
	Volatility          Level     `json:"volatility"`
	Demand              Level     `json:"demand"`
	MinPrice            float64   `json:"minPrice,omitempty"`
	MaxPrice            float64   `json:"maxPrice,omitempty"`
	ModalPrice          float64   `json:"modalPrice,omitempty"`
	Arrivals            int       `json:"arrivals,omitempty"`
	Source              string    `json:"source,omitempty"`
	LastUpdated         time.Time `json:"lastUpdated,omitempty"`
}

// MarketPrice is a single price quote, current or predicted.
// Volatility is expressed in percent.
type MarketPrice struct {
	MarketID   string    `json:"marketId"`
	MarketName string    `json:"marketName"`
	Crop       string    `json:"crop"`
	Price      float64   `json:"price"`
	Date       time.Time `json:"date"`
	Volatility float64   `json:"volatility"`
}

type MarketAnalysis struct {
	CurrentPrices   []MarketPrice `json:"currentPrices"`
	PriceHistory    []MarketPrice `json:"priceHistory"`
	PredictedPrices []MarketPrice `json:"predictedPrices"`
	ConfidenceScore float64       `json:"confidenceScore"`
	LastUpdated     time.Time     `json:"lastUpdated"`
}

// PredictedAt returns the prediction for marketID dated on the latest day available.
func (a MarketAnalysis) PredictedAt(marketID string) (MarketPrice, bool) {
	var (
		best  MarketPrice
		found bool
	)
	for _, p := range a.PredictedPrices {
		if p.MarketID != marketID {
			continue
		}
		if !found || !p.Date.Before(best.Date) {
			best = p
			found = true
		}
	}

	return best, found
}

// LivePriceMetadata describes where a live price snapshot came from.
type LivePriceMetadata struct {
	FetchedAt       time.Time `json:"fetchedAt"`
	Source          string    `json:"source"`
	Disclaimer      string    `json:"disclaimer"`
	RefreshInterval int       `json:"refreshInterval"`
}

// LivePrices is a snapshot of all tracked mandis for one crop.
type LivePrices struct {
	CropID   string            `json:"cropId"`
	Markets  []Market          `json:"markets"`
	Metadata LivePriceMetadata `json:"metadata"`
}

// ClassifyVolatility maps a fractional volatility (0.03 = 3%) onto a Level.
func ClassifyVolatility(v float64) Level {
	switch {
	case v > 0.04:
		return LevelHigh
	case v > 0.025:
		return LevelMedium
	default:
		return LevelLow
	}
}
