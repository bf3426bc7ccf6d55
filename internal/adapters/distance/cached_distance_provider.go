package distance

import (
	"context"
	"errors"
	"harvest-planner/internal/platform/logger"
	"harvest-planner/internal/platform/obs"
	"harvest-planner/internal/ports"
	"strings"
)

// Estimator is the fallback source of distances for pairs not yet cached.
type Estimator interface {
	Estimate(origin, destination string) float64
}

// CanonicalFunc maps a place name onto its cache key form.
type CanonicalFunc func(string) string

// CachedDistanceProvider implements DistanceProvider on top of an estimator
// whose fallback values are random. The first value handed out for a pair is
// pinned in the cache so later runs see the same distance.
type CachedDistanceProvider struct {
	estimator Estimator
	cache     ports.DistanceCache
	canonical CanonicalFunc
}

func NewCachedDistanceProvider(
	estimator Estimator,
	cache ports.DistanceCache,
	canonical CanonicalFunc,
) (*CachedDistanceProvider, error) {
	if estimator == nil {
		return nil, errors.New("cached distance provider: estimator is nil")
	}
	if canonical == nil {
		canonical = func(s string) string { return strings.Join(strings.Fields(s), " ") }
	}

	return &CachedDistanceProvider{
		estimator: estimator,
		cache:     cache,
		canonical: canonical,
	}, nil
}

func (p *CachedDistanceProvider) Distance(
	ctx context.Context,
	origin string,
	destination string,
) (_ float64, err error) {
	defer obs.Time(ctx, "distance.Distance")(&err)

	o := p.canonical(origin)
	d := p.canonical(destination)
	if o == "" || d == "" {
		return 0, errors.New("distance: origin and destination must be non-empty")
	}

	if p.cache != nil {
		km, ok, err := p.cache.Get(ctx, o, d)
		if err != nil {
			return 0, err
		}
		if ok {
			return km, nil
		}
	}

	km := p.estimator.Estimate(o, d)

	if p.cache != nil {
		if err := p.cache.Put(ctx, o, d, km); err != nil {
			logger.Warnf(ctx, "distance cache write failed: %v", err)
		}
	}

	return km, nil
}
