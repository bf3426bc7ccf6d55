package domain

// StorageConditions is the environment the harvest is held in plus its derived decay rate.
type StorageConditions struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	ShelfLifeDays int     `json:"shelfLife"`
	DailyLossRate float64 `json:"dailyLossRate"`
}

// StorageProjection is the value remaining after Day days of storage.
// RemainingValuePct is relative to day 0; CumulativeLoss is in currency.
type StorageProjection struct {
	Day               int     `json:"day"`
	RemainingValuePct float64 `json:"remainingValue"`
	CumulativeLoss    float64 `json:"cumulativeLoss"`
}

type StorageAnalysis struct {
	Current        StorageConditions   `json:"currentStorage"`
	Projections    []StorageProjection `json:"projectedLosses"`
	MaxStorageDays int                 `json:"maxStorageDays"`
}

// LossAt returns the cumulative loss on day, or on the last projected day
// if the horizon is shorter. Day zero and earlier carry no loss.
func (a StorageAnalysis) LossAt(day int) float64 {
	if len(a.Projections) == 0 || day <= 0 {
		return 0
	}
	if day < len(a.Projections) {
		return a.Projections[day].CumulativeLoss
	}
	return a.Projections[len(a.Projections)-1].CumulativeLoss
}
