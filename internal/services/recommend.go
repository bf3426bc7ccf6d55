package services

import (
	"fmt"
	"harvest-planner/internal/domain"
	"time"
)

const (
	comparisonHorizonDays = 7
	storeGainDiscount     = 0.9
	sellNowConfidence     = 0.95
)

// Recommend weighs selling at the first current market against holding the
// harvest for the best predicted price over the comparison horizon.
//
// The current market is analysis.CurrentPrices[0]; callers that want the best
// current market must sort first. Storage losses are read from day 7 of the
// projection and are expressed in currency.
func Recommend(
	analysis domain.MarketAnalysis,
	plan domain.LogisticsPlan,
	storage domain.StorageAnalysis,
	quantity float64,
	now time.Time,
) domain.Recommendation {
	if len(analysis.CurrentPrices) == 0 {
		rec := domain.FallbackRecommendation(now)
		rec.Reasoning = []string{"No market data available."}
		return rec
	}

	current := analysis.CurrentPrices[0]
	bestFuture := current
	for _, p := range analysis.PredictedPrices {
		if p.Price > bestFuture.Price {
			bestFuture = p
		}
	}

	transport := plan.FirstRouteCost()
	storageLoss := storage.LossAt(comparisonHorizonDays)

	currentNet := current.Price*quantity - transport
	futureNet := bestFuture.Price*quantity - storageLoss - transport

	increase := bestFuture.Price - current.Price
	gain := increase * quantity * storeGainDiscount

	if increase > 0 && gain > storageLoss {
		return domain.Recommendation{
			Type:            domain.RecommendStore,
			TargetMarket:    bestFuture.MarketName,
			BestTimeToSell:  now.AddDate(0, 0, comparisonHorizonDays),
			ExpectedRevenue: futureNet,
			NetProfit:       futureNet - currentNet,
			Confidence:      analysis.ConfidenceScore * storeGainDiscount,
			Reasoning: []string{
				fmt.Sprintf("Prices are expected to rise by ₹%.2f per quintal within %d days at %s.", increase, comparisonHorizonDays, bestFuture.MarketName),
				fmt.Sprintf("Discounted gain of ₹%.0f outweighs projected storage loss of ₹%.0f.", gain, storageLoss),
				fmt.Sprintf("Net gain from waiting: ₹%.2f.", futureNet-currentNet),
			},
			Risks: []string{
				fmt.Sprintf("Market predictions carry %.0f%% confidence.", analysis.ConfidenceScore*100),
				"Unexpected weather could affect storage quality.",
				"Market prices are subject to volatility.",
			},
		}
	}

	reasons := []string{
		fmt.Sprintf("Current price of ₹%.0f per quintal at %s is favourable.", current.Price, current.MarketName),
	}
	if increase <= 0 {
		reasons = append(reasons, "No significant price increase is expected.")
	} else {
		reasons = append(reasons, fmt.Sprintf("Storing would lose ₹%.0f, more than the discounted gain of ₹%.0f.", storageLoss, gain))
	}

	return domain.Recommendation{
		Type:            domain.RecommendSellNow,
		TargetMarket:    current.MarketName,
		BestTimeToSell:  now,
		ExpectedRevenue: currentNet,
		NetProfit:       currentNet - futureNet,
		Confidence:      sellNowConfidence,
		Reasoning:       reasons,
		Risks: []string{
			"Market prices may still rise after the sale.",
			"Immediate transport availability is required.",
		},
	}
}
