package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port     string
	LogLevel string
	LogDev   bool

	DBDriver    string
	DBPath      string
	DatabaseURL string
	SeedPath    string
	DBWait      time.Duration

	RedisAddr string

	GatewayURL string
	GatewayKey string

	PriceServiceURL      string
	PriceRefreshInterval time.Duration
	TrackedCrops         []string

	HTTPClientTimeout time.Duration
	MarketFetchDelay  time.Duration
	RandomSeed        uint64
}

const minPriceRefreshInterval = time.Second

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DEV", false)
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "data/app.db")
	v.SetDefault("SEED_PATH", "data/seeds/distances.json")
	v.SetDefault("DB_WAIT", 15*time.Second)
	v.SetDefault("PRICE_REFRESH_INTERVAL", 5*time.Minute)
	v.SetDefault("TRACKED_CROPS", "wheat,rice,tomato,onion,potato,soybean")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", 30*time.Second)
	v.SetDefault("MARKET_FETCH_DELAY", 500*time.Millisecond)
	v.SetDefault("RANDOM_SEED", 0)

	return v
}

// Load reads .env (when present) and the process environment.
// The returned bool reports whether a .env file was found.
func Load() (Config, bool) {
	found := godotenv.Load() == nil
	return FromViper(newViper()), found
}

// FromViper maps an already populated viper instance onto Config.
func FromViper(v *viper.Viper) Config {
	return Config{
		Port:                 v.GetString("PORT"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogDev:               v.GetBool("LOG_DEV"),
		DBDriver:             v.GetString("DB_DRIVER"),
		DBPath:               v.GetString("DB_PATH"),
		DatabaseURL:          v.GetString("DATABASE_URL"),
		SeedPath:             v.GetString("SEED_PATH"),
		DBWait:               durationSetting(v, "DB_WAIT"),
		RedisAddr:            v.GetString("REDIS_ADDR"),
		GatewayURL:           v.GetString("ANALYSIS_GATEWAY_URL"),
		GatewayKey:           v.GetString("ANALYSIS_GATEWAY_KEY"),
		PriceServiceURL:      v.GetString("PRICE_SERVICE_URL"),
		PriceRefreshInterval: max(durationSetting(v, "PRICE_REFRESH_INTERVAL"), minPriceRefreshInterval),
		TrackedCrops:         splitList(v.GetString("TRACKED_CROPS")),
		HTTPClientTimeout:    durationSetting(v, "HTTP_CLIENT_TIMEOUT"),
		MarketFetchDelay:     v.GetDuration("MARKET_FETCH_DELAY"),
		RandomSeed:           v.GetUint64("RANDOM_SEED"),
	}
}

// Get returns a single setting, falling back when it is unset or blank.
func Get(key, fallback string) string {
	v := viper.New()
	v.AutomaticEnv()
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return fallback
}

// DSN returns the data source name matching the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == "pgx" {
		return c.DatabaseURL
	}
	return c.DBPath
}

// durationSetting reads a duration, taking a bare integer as seconds.
func durationSetting(v *viper.Viper, key string) time.Duration {
	if n, err := strconv.ParseInt(strings.TrimSpace(v.GetString(key)), 10, 64); err == nil {
		return time.Duration(n) * time.Second
	}
	return v.GetDuration(key)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
