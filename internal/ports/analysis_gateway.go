package ports

import (
	"context"
	"harvest-planner/internal/domain"
)

// Boundary for the external market/weather/price generation service.
type AnalysisGateway interface {
	Analyze(ctx context.Context, farm domain.FarmContext) (*domain.AnalysisDocument, error)
}
