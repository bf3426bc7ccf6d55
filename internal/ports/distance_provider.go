package ports

import "context"

// Contract for resolving the road distance between two places, in kilometres.
type DistanceProvider interface {
	Distance(ctx context.Context, origin string, destination string) (float64, error)
}

// Persistent store of distances already handed out, keyed by canonical place names.
type DistanceCache interface {
	// Return the cached distance; ok is false on a miss.
	Get(ctx context.Context, origin string, destination string) (km float64, ok bool, err error)
	Put(ctx context.Context, origin string, destination string, km float64) error
}
