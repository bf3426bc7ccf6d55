package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"harvest-planner/internal/adapters/cache"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/obs"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const (
	tableFarmContexts = "farm_contexts"
	tableHistory      = "recommendation_history"

	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var historyColumns = []string{
	"id", "user_id", "crop_id", "quantity", "location", "storage_type",
	"recommendation_type", "target_market", "expected_revenue", "net_profit",
	"confidence", "created_at",
}

// SQLHistoryRepository implements the RecommendationRepository port.
type SQLHistoryRepository struct {
	db      *sqlx.DB
	builder squirrel.StatementBuilderType
}

func NewSQLHistoryRepository(db *sql.DB, driver string) *SQLHistoryRepository {
	return &SQLHistoryRepository{
		db:      sqlx.NewDb(db, driver),
		builder: cache.Builder(driver),
	}
}

// Save stores the farm context and its recommendation atomically.
func (r *SQLHistoryRepository) Save(ctx context.Context, farm domain.FarmContext, e domain.HistoryEntry) (err error) {
	defer obs.Time(ctx, "history.Save")(&err)

	if r.db == nil {
		return errors.New("history repository: DB is nil")
	}
	if e.ID == "" || e.UserID == "" {
		return fmt.Errorf("save history: %w: id and user id are required", domain.ErrInvalidInput)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save history: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertFarm := r.builder.Insert(tableFarmContexts).
		Columns("id", "user_id", "crop_id", "quantity", "location", "storage_type",
			"vehicle_type", "temperature", "humidity", "created_at").
		Values(e.ID, e.UserID, farm.CropID, farm.Quantity, farm.Location, farm.StorageType,
			farm.VehicleType, farm.Temperature, farm.Humidity, e.CreatedAt)
	if err := execBuilt(ctx, tx, insertFarm); err != nil {
		return fmt.Errorf("save history: insert farm context: %w", err)
	}

	insertHistory := r.builder.Insert(tableHistory).
		Columns(historyColumns...).
		Columns("farm_context_id").
		Values(e.ID, e.UserID, e.CropID, e.Quantity, e.Location, e.StorageType,
			string(e.Type), e.TargetMarket, e.ExpectedRevenue, e.NetProfit,
			e.Confidence, e.CreatedAt, e.ID)
	if err := execBuilt(ctx, tx, insertHistory); err != nil {
		return fmt.Errorf("save history: insert recommendation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save history: commit tx: %w", err)
	}
	return nil
}

// ListByUser returns a user's recommendations, newest first.
func (r *SQLHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) (_ []domain.HistoryEntry, err error) {
	defer obs.Time(ctx, "history.ListByUser")(&err)

	if r.db == nil {
		return nil, errors.New("history repository: DB is nil")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	q, args, err := r.builder.Select(historyColumns...).
		From(tableHistory).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list history: build query: %w", err)
	}

	out := make([]domain.HistoryEntry, 0, limit)
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("list history: query %s: %w", tableHistory, err)
	}
	return out, nil
}

func execBuilt(ctx context.Context, tx *sqlx.Tx, b squirrel.InsertBuilder) error {
	q, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, q, args...)
	return err
}
