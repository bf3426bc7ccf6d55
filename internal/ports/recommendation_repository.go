package ports

import (
	"context"
	"harvest-planner/internal/domain"
)

// Port: persisted recommendation history for returning users.
type RecommendationRepository interface {
	Save(ctx context.Context, farm domain.FarmContext, entry domain.HistoryEntry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error)
}
