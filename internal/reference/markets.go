package reference

import "strings"

// Quote is a seed price for one mandi. Volatility is in percent.
type Quote struct {
	MarketID   string
	MarketName string
	Price      float64
	Volatility float64
}

var seedQuotes = map[string][]Quote{
	"wheat": {
		{MarketID: "m1", MarketName: "Azadpur Mandi", Price: 2350, Volatility: 2.5},
		{MarketID: "m2", MarketName: "Vashi APMC", Price: 2280, Volatility: 1.8},
		{MarketID: "m3", MarketName: "Koyambedu", Price: 2400, Volatility: 3.2},
	},
	"rice": {
		{MarketID: "m1", MarketName: "Azadpur Mandi", Price: 2800, Volatility: 2.8},
		{MarketID: "m2", MarketName: "Vashi APMC", Price: 2750, Volatility: 2.1},
	},
	"tomato":  {{MarketID: "m1", MarketName: "Azadpur Mandi", Price: 1800, Volatility: 5.2}},
	"onion":   {{MarketID: "m1", MarketName: "Azadpur Mandi", Price: 1500, Volatility: 4.1}},
	"potato":  {{MarketID: "m1", MarketName: "Azadpur Mandi", Price: 1200, Volatility: 2.3}},
	"soybean": {{MarketID: "m1", MarketName: "Azadpur Mandi", Price: 4500, Volatility: 3.5}},
}

// SeedQuotes returns the static quotes for a crop; nil when none are known.
func SeedQuotes(cropID string) []Quote {
	q := seedQuotes[strings.ToLower(strings.TrimSpace(cropID))]
	if len(q) == 0 {
		return nil
	}
	out := make([]Quote, len(q))
	copy(out, q)
	return out
}

// BaseMarket drives the live price simulator.
// Volatility is a fraction; DemandFactor above 1 means buyers outnumber arrivals.
type BaseMarket struct {
	ID           string
	Name         string
	Location     string
	State        string
	DistanceKm   float64
	BasePrice    float64
	Volatility   float64
	DemandFactor float64
}

var baseMarkets = []BaseMarket{
	{ID: "mandi-a", Name: "Azadpur Mandi", Location: "Delhi", State: "Delhi", DistanceKm: 45, BasePrice: 2350, Volatility: 0.03, DemandFactor: 1.1},
	{ID: "mandi-b", Name: "Vashi APMC", Location: "Mumbai", State: "Maharashtra", DistanceKm: 120, BasePrice: 2280, Volatility: 0.02, DemandFactor: 1.0},
	{ID: "mandi-c", Name: "Koyambedu", Location: "Chennai", State: "Tamil Nadu", DistanceKm: 85, BasePrice: 2400, Volatility: 0.05, DemandFactor: 1.15},
	{ID: "mandi-d", Name: "Devi Ahilya Bai", Location: "Indore", State: "Madhya Pradesh", DistanceKm: 30, BasePrice: 2250, Volatility: 0.02, DemandFactor: 0.95},
	{ID: "mandi-e", Name: "Yeshwanthpur APMC", Location: "Bangalore", State: "Karnataka", DistanceKm: 65, BasePrice: 2320, Volatility: 0.03, DemandFactor: 1.05},
	{ID: "mandi-f", Name: "Bowenpally", Location: "Hyderabad", State: "Telangana", DistanceKm: 55, BasePrice: 2290, Volatility: 0.04, DemandFactor: 1.0},
}

func BaseMarkets() []BaseMarket {
	out := make([]BaseMarket, len(baseMarkets))
	copy(out, baseMarkets)
	return out
}

var cropPriceMultipliers = map[string]float64{
	"wheat":   1.0,
	"rice":    0.95,
	"tomato":  0.8,
	"onion":   0.7,
	"potato":  0.55,
	"soybean": 2.0,
}

// CropPriceMultiplier scales base mandi prices to a crop; 1.0 when unknown.
func CropPriceMultiplier(cropID string) float64 {
	if m, ok := cropPriceMultipliers[strings.ToLower(strings.TrimSpace(cropID))]; ok {
		return m
	}
	return 1.0
}
