package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"flex_reviews/internal/adapters/google"
	"flex_reviews/internal/adapters/hostaway"
	server "flex_reviews/internal/adapters/http_server"
	"flex_reviews/internal/adapters/observability"
	redisad "flex_reviews/internal/adapters/redis"
	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
	"flex_reviews/internal/shared"
	"flex_reviews/internal/storage/mysql"
	"flex_reviews/internal/store"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db is optional; without it moderation and sync results stay in memory
	var repo domain.ReviewRepository
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysql.New(db)
	} else {
		log.Warn().Msg("MYSQL_DSN is empty, running without persistence")
	}

	src := hostaway.New(cfg.SourceLatency)
	props, err := src.GetAllProperties(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("load properties failed")
	}
	st := store.NewMemory(props)

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	places := google.New(cfg.PlacesBase, cfg.PlacesKey, cfg.PlacesRPS)

	q := app.NewQueryService(src, st, cache, cfg.CacheTTL)
	s := app.NewSyncService(st, places, repo, cache)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, S: s})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
