package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceEstimatorKnownPairs(t *testing.T) {
	e := NewDistanceEstimator(constRand(0.5))

	assert.Equal(t, 1400.0, e.Estimate("Delhi", "Mumbai"))
	assert.Equal(t, 1400.0, e.Estimate("  DELHI ", "mumbai"))
	assert.Equal(t, 150.0, e.Estimate("Mumbai", "Pune"))
}

func TestDistanceEstimatorFallback(t *testing.T) {
	cases := []struct {
		u    float64
		want float64
	}{
		{0, 100},
		{0.25, 350},
		{0.9999, 1099},
	}
	for _, tc := range cases {
		e := NewDistanceEstimator(constRand(tc.u))
		assert.Equal(t, tc.want, e.Estimate("Nashik", "Azadpur Mandi"))
	}

	km, err := NewDistanceEstimator(constRand(0.25)).Distance(context.Background(), "Pune", "Mumbai")
	require.NoError(t, err)
	assert.Equal(t, 350.0, km, "pairs are directional")
}

func TestCanonicalPlace(t *testing.T) {
	assert.Equal(t, "azadpur mandi", CanonicalPlace("  Azadpur\tMANDI "))
	assert.Equal(t, "delhi-mumbai", PairKey("Delhi", " Mumbai"))
}
