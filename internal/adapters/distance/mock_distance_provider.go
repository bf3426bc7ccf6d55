package distance

import (
	"context"
	"fmt"
)

type MockPair struct {
	From, To string
	Km       float64
}

// MockDistanceProvider serves a fixed set of pairs and fails on anything else.
type MockDistanceProvider struct {
	m map[string]float64
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = p.Km
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) Distance(ctx context.Context, origin, destination string) (float64, error) {
	km, ok := p.m[origin+"|"+destination]
	if !ok {
		return 0, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}

	return km, nil
}
