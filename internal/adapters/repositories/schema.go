package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"harvest-planner/internal/adapters/cache"
	"os"
	"strings"
)

// InitSchema creates the tables used by the distance cache and the
// recommendation history. The DDL is valid for both SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDistanceCacheQuery := `
	CREATE TABLE IF NOT EXISTS distance_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		km DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createFarmContextsQuery := `
	CREATE TABLE IF NOT EXISTS farm_contexts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		crop_id TEXT NOT NULL,
		quantity DOUBLE PRECISION NOT NULL,
		location TEXT NOT NULL,
		storage_type TEXT NOT NULL,
		vehicle_type TEXT NOT NULL DEFAULT '',
		temperature DOUBLE PRECISION,
		humidity DOUBLE PRECISION,
		created_at TIMESTAMP NOT NULL
	);
	`

	createHistoryQuery := `
	CREATE TABLE IF NOT EXISTS recommendation_history (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		farm_context_id TEXT NOT NULL REFERENCES farm_contexts(id),
		crop_id TEXT NOT NULL,
		quantity DOUBLE PRECISION NOT NULL,
		location TEXT NOT NULL,
		storage_type TEXT NOT NULL,
		recommendation_type TEXT NOT NULL,
		target_market TEXT NOT NULL,
		expected_revenue DOUBLE PRECISION NOT NULL,
		net_profit DOUBLE PRECISION NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_recommendation_history_user_created
	ON recommendation_history(user_id, created_at);
	`

	statements := []string{
		createDistanceCacheQuery,
		createFarmContextsQuery,
		createHistoryQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type DistanceSeed struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Km          float64 `json:"km"`
}

// SeedDistances loads known road distances from a JSON file into the distance cache.
func SeedDistances(ctx context.Context, c *cache.SQLDistanceCache, jsonPath string, canonical func(string) string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed distances: read %q: %w", jsonPath, err)
	}

	var data []DistanceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed distances: parse json: %w", err)
	}

	pairs := make(map[[2]string]float64, len(data))
	for i, item := range data {
		origin := canonical(strings.TrimSpace(item.Origin))
		dest := canonical(strings.TrimSpace(item.Destination))
		if origin == "" || dest == "" {
			return fmt.Errorf("seed distances: item at index %d: origin and destination are required", i+1)
		}
		if item.Km <= 0 {
			return fmt.Errorf("seed distances: invalid km at index %d: %v", i+1, item.Km)
		}
		pairs[[2]string{origin, dest}] = item.Km
	}

	if err := c.PutMany(ctx, pairs); err != nil {
		return fmt.Errorf("seed distances: %w", err)
	}

	return nil
}
