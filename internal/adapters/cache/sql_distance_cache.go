package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"harvest-planner/internal/platform/obs"
	"strings"

	"github.com/Masterminds/squirrel"
)

const tableDistanceCache = "distance_cache"

// SQLDistanceCache is a SQL-backed cache of origin->destination distances.
// Keys are expected to be canonical already.
type SQLDistanceCache struct {
	DB      *sql.DB
	builder squirrel.StatementBuilderType
}

// NewSQLDistanceCache binds the cache to db using the placeholder style of driver.
func NewSQLDistanceCache(db *sql.DB, driver string) *SQLDistanceCache {
	return &SQLDistanceCache{DB: db, builder: Builder(driver)}
}

// Builder returns a statement builder with placeholders for the given driver.
func Builder(driver string) squirrel.StatementBuilderType {
	if driver == "pgx" {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (s *SQLDistanceCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (_ float64, _ bool, err error) {
	defer obs.Time(ctx, "distance.cache.Get")(&err)

	if s.DB == nil {
		return 0, false, errors.New("distance cache: db is nil")
	}
	if origin == "" || destination == "" {
		return 0, false, errors.New("get distance cache: origin and destination must not be empty")
	}

	q, args, err := s.builder.Select("km").
		From(tableDistanceCache).
		Where(squirrel.Eq{"origin": origin, "destination": destination}).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("get distance cache: build query: %w", err)
	}

	var km float64
	err = s.DB.QueryRowContext(ctx, q, args...).Scan(&km)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get distance cache: query %s: %w", tableDistanceCache, err)
	}

	return km, true, nil
}

// Put stores a distance, replacing any previous value for the pair.
func (s *SQLDistanceCache) Put(ctx context.Context, origin, destination string, km float64) error {
	return s.PutMany(ctx, map[[2]string]float64{{origin, destination}: km})
}

// PutMany stores several distances in one transaction.
func (s *SQLDistanceCache) PutMany(ctx context.Context, pairs map[[2]string]float64) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}
	if len(pairs) == 0 {
		return nil
	}

	q, _, err := s.builder.Insert(tableDistanceCache).
		Columns("origin", "destination", "km").
		Values("", "", 0).
		Suffix("ON CONFLICT (origin, destination) DO UPDATE SET km = EXCLUDED.km").
		ToSql()
	if err != nil {
		return fmt.Errorf("insert distance cache: build statement: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert distance cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return fmt.Errorf("insert distance cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for pair, km := range pairs {
		origin, dest := strings.TrimSpace(pair[0]), strings.TrimSpace(pair[1])
		if origin == "" || dest == "" {
			return fmt.Errorf("insert distance cache: empty key %q -> %q", pair[0], pair[1])
		}

		if _, err := stmt.ExecContext(ctx, origin, dest, km); err != nil {
			return fmt.Errorf("insert distance cache %q -> %q: %w", origin, dest, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert distance cache commit: %w", err)
	}

	return nil
}
