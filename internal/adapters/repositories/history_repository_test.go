package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/db"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.DriverSQLite, ":memory:", time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(context.Background(), conn))
	return conn
}

func historyEntry(id, user string, at time.Time) (domain.FarmContext, domain.HistoryEntry) {
	temp := 31.5
	farm := domain.FarmContext{
		UserID:      user,
		CropID:      "onion",
		Quantity:    80,
		Location:    "Nashik",
		StorageType: "Warehouse",
		Temperature: &temp,
	}
	entry := domain.HistoryEntry{
		ID:              id,
		UserID:          user,
		CropID:          farm.CropID,
		Quantity:        farm.Quantity,
		Location:        farm.Location,
		StorageType:     farm.StorageType,
		Type:            domain.RecommendStore,
		TargetMarket:    "Lasalgaon APMC",
		ExpectedRevenue: 152000,
		NetProfit:       6400,
		Confidence:      0.64,
		CreatedAt:       at,
	}
	return farm, entry
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, InitSchema(context.Background(), conn))

	for _, table := range []string{"distance_cache", "farm_contexts", "recommendation_history"} {
		var n int
		err := conn.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n)
		require.NoError(t, err, table)
	}

	assert.Error(t, InitSchema(context.Background(), nil))
}

func TestHistoryRepositorySaveAndList(t *testing.T) {
	conn := openTestDB(t)
	repo := NewSQLHistoryRepository(conn, db.DriverSQLite)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := range 3 {
		farm, e := historyEntry(fmt.Sprintf("run-%d", i), "farmer-7", base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Save(ctx, farm, e))
	}
	farm, other := historyEntry("run-x", "farmer-9", base)
	require.NoError(t, repo.Save(ctx, farm, other))

	got, err := repo.ListByUser(ctx, "farmer-7", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "run-2", got[0].ID)
	assert.Equal(t, "run-0", got[2].ID)
	assert.Equal(t, domain.RecommendStore, got[0].Type)
	assert.Equal(t, "Lasalgaon APMC", got[0].TargetMarket)
	assert.InDelta(t, 0.64, got[0].Confidence, 1e-9)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(2*time.Hour)))

	limited, err := repo.ListByUser(ctx, "farmer-7", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "run-2", limited[0].ID)

	none, err := repo.ListByUser(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	var temp sql.NullFloat64
	require.NoError(t, conn.QueryRow(`SELECT temperature FROM farm_contexts WHERE id = 'run-0'`).Scan(&temp))
	assert.True(t, temp.Valid)
	assert.Equal(t, 31.5, temp.Float64)
}

func TestHistoryRepositorySaveIsAtomic(t *testing.T) {
	conn := openTestDB(t)
	repo := NewSQLHistoryRepository(conn, db.DriverSQLite)
	ctx := context.Background()

	farm, e := historyEntry("run-1", "farmer-7", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, farm, e))

	// Same id: the farm context insert fails and nothing else is written.
	err := repo.Save(ctx, farm, e)
	require.Error(t, err)

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM recommendation_history`).Scan(&n))
	assert.Equal(t, 1, n)

	assert.ErrorIs(t, repo.Save(ctx, farm, domain.HistoryEntry{UserID: "farmer-7"}), domain.ErrInvalidInput)
}
