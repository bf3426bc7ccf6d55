package main

import (
	"context"
	"database/sql"
	"errors"
	"harvest-planner/internal/adapters/cache"
	"harvest-planner/internal/adapters/repositories"
	"harvest-planner/internal/config"
	"harvest-planner/internal/platform/db"
	"harvest-planner/internal/platform/logger"
	"harvest-planner/internal/services"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	_ = logger.Init("info", true)
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Infof(ctx, "No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		logger.Fatal(ctx, errors.New("DATABASE_URL is required"))
	}

	conn, err := db.Open(ctx, db.DriverPostgres, databaseURL, 30*time.Second)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/distances.json")
	if err := initAndSeed(ctx, conn, seedPath); err != nil {
		logger.Fatal(ctx, err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	logger.Infof(ctx, "Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		logger.Errorf(ctx, "schema initialization failed: %v", err)
		return err
	}
	logger.Infof(ctx, "Schema ready.")

	logger.Infof(ctx, "Seeding distances from %s...", seedPath)
	c := cache.NewSQLDistanceCache(conn, db.DriverPostgres)
	if err := repositories.SeedDistances(ctx, c, seedPath, services.CanonicalPlace); err != nil {
		logger.Errorf(ctx, "seeding failed: %v", err)
		return err
	}
	logger.Infof(ctx, "Seeding complete.")

	return nil
}
