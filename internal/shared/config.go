package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	PlacesBase    string
	PlacesKey     string
	PlacesRPS     int
	Workers       int
	SourceLatency time.Duration
	CacheTTL      time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		// Empty DSN runs the API without a database; moderation and
		// sync results then live in memory only.
		MySQLDSN:      env("MYSQL_DSN", ""),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisDB:       atoi("REDIS_DB", 0),
		RedisPass:     env("REDIS_PASSWORD", ""),
		PlacesBase:    env("GOOGLE_PLACES_BASE_URL", ""),
		PlacesKey:     env("GOOGLE_PLACES_API_KEY", ""),
		PlacesRPS:     atoi("GOOGLE_PLACES_RPS", 5),
		Workers:       atoi("SYNC_WORKERS", 4),
		SourceLatency: time.Duration(atoi("SOURCE_LATENCY_MS", 0)) * time.Millisecond,
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
	}
	if c.PlacesKey == "" {
		log.Warn().Msg("GOOGLE_PLACES_API_KEY is empty, google syncs will serve mock reviews")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
