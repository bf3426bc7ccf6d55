package domain

import "time"

type RecommendationType string

const (
	RecommendSellNow   RecommendationType = "sell_now"
	RecommendStore     RecommendationType = "store"
	RecommendSellLater RecommendationType = "sell_later"
)

// Recommendation is the final output of an analysis run.
// NetProfit is the delta against the alternative that was not chosen.
type Recommendation struct {
	Type            RecommendationType `json:"recommendationType"`
	TargetMarket    string             `json:"targetMarket"`
	BestTimeToSell  time.Time          `json:"bestTimeToSell"`
	ExpectedRevenue float64            `json:"expectedRevenue"`
	NetProfit       float64            `json:"netProfit"`
	Confidence      float64            `json:"confidence"`
	Reasoning       []string           `json:"reasoning"`
	Risks           []string           `json:"risks"`
}

// FallbackRecommendation is returned when the pipeline cannot complete.
func FallbackRecommendation(now time.Time) Recommendation {
	return Recommendation{
		Type:           RecommendSellNow,
		TargetMarket:   "Nearest Local Market",
		BestTimeToSell: now,
		Reasoning:      []string{"Unable to complete analysis due to system error."},
		Risks:          []string{"Incomplete data may affect recommendation accuracy."},
	}
}
