package cache

import (
	"context"
	"database/sql"
	"harvest-planner/internal/platform/db"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDistanceCache(t *testing.T) *SQLDistanceCache {
	t.Helper()

	conn, err := db.Open(context.Background(), db.DriverSQLite, ":memory:", time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`CREATE TABLE distance_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		km DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (origin, destination)
	)`)
	require.NoError(t, err)

	return NewSQLDistanceCache(conn, db.DriverSQLite)
}

func TestSQLDistanceCacheRoundTrip(t *testing.T) {
	c := openDistanceCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "karnal", "azadpur mandi")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "karnal", "azadpur mandi", 120))
	km, ok, err := c.Get(ctx, "karnal", "azadpur mandi")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 120.0, km)

	// Pairs are directional.
	_, ok, err = c.Get(ctx, "azadpur mandi", "karnal")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLDistanceCachePutManyUpserts(t *testing.T) {
	c := openDistanceCache(t)
	ctx := context.Background()

	require.NoError(t, c.PutMany(ctx, map[[2]string]float64{
		{"delhi", "mumbai"}: 1400,
		{"mumbai", "pune"}:  150,
	}))
	require.NoError(t, c.Put(ctx, "delhi", "mumbai", 1415))

	km, ok, err := c.Get(ctx, "delhi", "mumbai")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1415.0, km)

	var n int
	require.NoError(t, c.DB.QueryRow(`SELECT COUNT(*) FROM distance_cache`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestSQLDistanceCacheRejectsEmptyKeys(t *testing.T) {
	c := openDistanceCache(t)
	ctx := context.Background()

	_, _, err := c.Get(ctx, "", "pune")
	assert.Error(t, err)

	err = c.PutMany(ctx, map[[2]string]float64{{"nashik", " "}: 10})
	assert.Error(t, err)

	// The failed batch leaves nothing behind.
	var n int
	require.NoError(t, c.DB.QueryRow(`SELECT COUNT(*) FROM distance_cache`).Scan(&n))
	assert.Zero(t, n)

	nilCache := &SQLDistanceCache{DB: (*sql.DB)(nil), builder: Builder(db.DriverSQLite)}
	assert.Error(t, nilCache.Put(ctx, "a", "b", 1))
}

func TestBuilderPlaceholders(t *testing.T) {
	q, _, err := Builder(db.DriverPostgres).Select("km").From("distance_cache").Where("origin = ?", "a").ToSql()
	require.NoError(t, err)
	assert.Contains(t, q, "$1")

	q, _, err = Builder(db.DriverSQLite).Select("km").From("distance_cache").Where("origin = ?", "a").ToSql()
	require.NoError(t, err)
	assert.Contains(t, q, "?")
}
