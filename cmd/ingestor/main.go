package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"flex_reviews/internal/adapters/google"
	"flex_reviews/internal/adapters/hostaway"
	"flex_reviews/internal/adapters/observability"
	redisad "flex_reviews/internal/adapters/redis"
	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
	"flex_reviews/internal/shared"
	"flex_reviews/internal/storage/mysql"
	"flex_reviews/internal/store"
)

// Pulls the Google channel for every property that has a place ID and
// persists the merged collections, bounded by a worker pool.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.Workers).
		Bool("places_configured", cfg.PlacesKey != "").
		Msg("ingestor starting")

	var repo domain.ReviewRepository
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("db ping ok")
		repo = mysql.New(db)
	} else {
		log.Warn().Msg("MYSQL_DSN is empty, merged reviews will not be persisted")
	}

	src := hostaway.New(cfg.SourceLatency)
	props, err := src.GetAllProperties(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load properties failed")
	}
	st := store.NewMemory(props)

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	places := google.New(cfg.PlacesBase, cfg.PlacesKey, cfg.PlacesRPS)
	svc := app.NewSyncService(st, places, repo, cache)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, p := range props {
		if p.PlaceID == "" {
			log.Info().Str("id", p.ID).Msg("no place id, skipping")
			continue
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(propertyID string) {
			defer wg.Done()
			defer sem.Release(1)

			rep, err := svc.SyncGoogle(ctx, propertyID)
			if err != nil {
				log.Warn().Str("id", propertyID).Err(err).Msg("sync failed")
				return
			}
			log.Info().
				Str("id", propertyID).
				Int("added", rep.Added).
				Int("total", rep.Total).
				Str("source", rep.Source).
				Msg("sync ok")
		}(p.ID)
	}

	wg.Wait()
	log.Info().Msg("sync completed")
}
