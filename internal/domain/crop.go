package domain

// Crop is immutable reference data for a harvestable commodity.
// Prices are quoted per Unit (quintal).
type Crop struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	NameHindi      string  `json:"nameHindi"`
	ShelfLifeDays  int     `json:"shelfLife"`
	LossRatePerDay float64 `json:"lossRatePerDay"`
	BasePrice      float64 `json:"basePrice"`
	Unit           string  `json:"unit"`
}

// StorageCondition describes how a farmer holds the harvest while waiting to sell.
type StorageCondition struct {
	Type           string  `json:"type"`
	LossMultiplier float64 `json:"lossMultiplier"`
	CostPerDay     float64 `json:"costPerDay"`
	Description    string  `json:"description"`
}

// TransportRate is the hire cost of one vehicle class.
// Capacity is in quintals and RatePerKm is charged per trip.
type TransportRate struct {
	VehicleType  string  `json:"vehicleType"`
	RatePerKm    float64 `json:"ratePerKm"`
	Capacity     float64 `json:"capacity"`
	LoadingHours float64 `json:"loadingTime"`
}
