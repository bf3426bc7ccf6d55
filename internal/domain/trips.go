package domain

import (
	"fmt"
	"math"
)

// TripsNeeded returns how many loads a vehicle of the given capacity must
// make to move quantity. Partial loads count as a whole trip.
func TripsNeeded(quantity, capacity float64) (int, error) {
	if capacity <= 0 {
		return 0, fmt.Errorf("trips needed: capacity must be positive (capacity=%v)", capacity)
	}
	if quantity <= 0 {
		return 0, nil
	}

	return int(math.Ceil(quantity / capacity)), nil
}
