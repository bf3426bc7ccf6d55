package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := FromViper(newViper())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 5*time.Minute, cfg.PriceRefreshInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.MarketFetchDelay)
	assert.Equal(t, []string{"wheat", "rice", "tomato", "onion", "potato", "soybean"}, cfg.TrackedCrops)
	assert.Equal(t, "data/app.db", cfg.DSN())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "postgres://localhost/harvest")
	t.Setenv("PRICE_REFRESH_INTERVAL", "90s")
	t.Setenv("TRACKED_CROPS", " Wheat, ,onion ")
	t.Setenv("RANDOM_SEED", "42")

	cfg := FromViper(newViper())

	assert.Equal(t, "postgres://localhost/harvest", cfg.DSN())
	assert.Equal(t, 90*time.Second, cfg.PriceRefreshInterval)
	assert.Equal(t, []string{"wheat", "onion"}, cfg.TrackedCrops)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
}

func TestGetFallback(t *testing.T) {
	t.Setenv("SEED_PATH", "  ")
	assert.Equal(t, "fallback.json", Get("SEED_PATH", "fallback.json"))

	t.Setenv("SEED_PATH", "seeds.json")
	assert.Equal(t, "seeds.json", Get("SEED_PATH", "fallback.json"))
}

func TestBareDurationsAreSeconds(t *testing.T) {
	t.Setenv("PRICE_REFRESH_INTERVAL", "300")
	t.Setenv("DB_WAIT", " 20 ")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "1500ms")

	cfg := FromViper(newViper())

	assert.Equal(t, 300*time.Second, cfg.PriceRefreshInterval)
	assert.Equal(t, 20*time.Second, cfg.DBWait)
	assert.Equal(t, 1500*time.Millisecond, cfg.HTTPClientTimeout)
}

func TestPriceRefreshIntervalHasFloor(t *testing.T) {
	t.Setenv("PRICE_REFRESH_INTERVAL", "5ms")

	cfg := FromViper(newViper())

	assert.Equal(t, time.Second, cfg.PriceRefreshInterval)
}
