package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"harvest-planner/internal/adapters/cache"
	"harvest-planner/internal/adapters/distance"
	"harvest-planner/internal/adapters/prices"
	"harvest-planner/internal/adapters/repositories"
	"harvest-planner/internal/adapters/upstream"
	"harvest-planner/internal/api"
	"harvest-planner/internal/config"
	"harvest-planner/internal/platform/db"
	"harvest-planner/internal/platform/logger"
	"harvest-planner/internal/ports"
	"harvest-planner/internal/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis, upstream HTTP) behind ports and starts the HTTP server.
func main() {
	cfg, found := config.Load()
	if err := logger.Init(cfg.LogLevel, cfg.LogDev); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !found {
		logger.Infof(ctx, "No .env file found (using environment variables)")
	}

	conn, err := db.Open(ctx, cfg.DBDriver, cfg.DSN(), cfg.DBWait)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer conn.Close()

	// Initialize schema and seed known distances on startup for local runs.
	distanceCache := cache.NewSQLDistanceCache(conn, cfg.DBDriver)
	if err := initAndSeed(ctx, conn, distanceCache, cfg.SeedPath); err != nil {
		logger.Fatal(ctx, err)
	}

	rng := services.NewLockedRand(cfg.RandomSeed)

	// Estimated distances are pinned in the SQL cache so repeat runs agree.
	provider, err := distance.NewCachedDistanceProvider(
		services.NewDistanceEstimator(rng), distanceCache, services.CanonicalPlace)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	marketSource, quotes, err := newMarketSources(cfg, rng)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	poller := &services.PricePoller{
		Source:   marketSource,
		Cache:    newPriceCache(ctx, cfg.RedisAddr),
		Crops:    cfg.TrackedCrops,
		Interval: cfg.PriceRefreshInterval,
	}
	go poller.Run(ctx)

	history := repositories.NewSQLHistoryRepository(conn, cfg.DBDriver)
	supervisor := &services.Supervisor{
		Market:    &services.MarketAnalyst{Quotes: quotes, Rand: rng},
		Logistics: &services.LogisticsCoordinator{Distances: provider, Rand: rng},
		Storage:   &services.StorageStrategist{},
		History:   history,
	}

	var gateway ports.AnalysisGateway
	if cfg.GatewayURL != "" {
		g, err := upstream.NewAnalysisGateway(cfg.GatewayURL, cfg.GatewayKey, cfg.HTTPClientTimeout)
		if err != nil {
			logger.Fatal(ctx, err)
		}
		gateway = g
	} else {
		logger.Warnf(ctx, "ANALYSIS_GATEWAY_URL is not set; /analysis/ai is disabled")
	}

	router := api.NewRouter(api.Deps{
		Analyzer: supervisor,
		Gateway:  gateway,
		Prices:   poller,
		History:  history,
	})

	// Timeouts allow for a slow upstream generation service.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(shutdownCtx, "shutdown: %v", err)
		}
	}()

	logger.Infof(ctx, "Server listening addr=:%s driver=%s", cfg.Port, cfg.DBDriver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(ctx, err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, c *cache.SQLDistanceCache, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedDistances(ctx, c, seedPath, services.CanonicalPlace); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// newMarketSources picks the live-price feed and the quote source the market
// analyst reads. Without PRICE_SERVICE_URL both are local.
func newMarketSources(cfg config.Config, rng ports.RandomSource) (ports.MarketSource, ports.QuoteSource, error) {
	if cfg.PriceServiceURL == "" {
		sim := &prices.Simulator{Rand: rng, RefreshInterval: cfg.PriceRefreshInterval}
		return sim, &prices.StaticQuotes{Delay: cfg.MarketFetchDelay}, nil
	}

	svc, err := upstream.NewPriceService(cfg.PriceServiceURL, cfg.HTTPClientTimeout)
	if err != nil {
		return nil, nil, err
	}
	return svc, &prices.LiveQuotes{Source: svc}, nil
}

// newPriceCache prefers Redis and falls back to process memory when it is
// not configured or not reachable.
func newPriceCache(ctx context.Context, addr string) ports.PriceCache {
	if addr == "" {
		return cache.NewMemoryPriceCache()
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warnf(ctx, "redis %s unreachable, using in-memory price cache: %v", addr, err)
		_ = client.Close()
		return cache.NewMemoryPriceCache()
	}
	return cache.NewRedisPriceCache(client)
}
