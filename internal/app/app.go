package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/humanbelnik/kinoswap/prefform/internal/config"
	http_catalog "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/catalog"
	http_form "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/form"
	http_init "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/init"
	http_options "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/options"
	http_ratings "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/ratings"
	http_submission "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/submission"
	http_swagger "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/swagger"
	ws_form "github.com/humanbelnik/kinoswap/prefform/internal/delivery/ws/form"
	"github.com/humanbelnik/kinoswap/prefform/internal/infra/catalog_static"
	"github.com/humanbelnik/kinoswap/prefform/internal/infra/lookupcache_mock"
	infra_pg_init "github.com/humanbelnik/kinoswap/prefform/internal/infra/postgres/init"
	infra_postgres_catalog "github.com/humanbelnik/kinoswap/prefform/internal/infra/postgres/catalog"
	infra_redis_init "github.com/humanbelnik/kinoswap/prefform/internal/infra/redis/init"
	infra_lookup_cache "github.com/humanbelnik/kinoswap/prefform/internal/infra/redis/lookup_cache"
	infra_wikidata "github.com/humanbelnik/kinoswap/prefform/internal/infra/wikidata"
	usecase_catalog "github.com/humanbelnik/kinoswap/prefform/internal/usecase/catalog"
	usecase_options "github.com/humanbelnik/kinoswap/prefform/internal/usecase/options"
	usecase_submission "github.com/humanbelnik/kinoswap/prefform/internal/usecase/submission"
)

const wsPath = "/api/v1/form/ws"

func Go(cfg *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cfg.HTTP.Mode)
	slog.SetDefault(logger)

	var lookupCache usecase_options.Cache
	if cfg.Redis.Enabled() {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		defer redisConn.Close()
		lookupCache = infra_lookup_cache.New(redisConn, cfg.Redis.Key, cfg.Redis.TTL)
	} else {
		log.Printf("redis is not configured, lookup results are not cached")
		lookupCache = lookupcache_mock.New()
	}

	var catalogRepository usecase_catalog.Repository
	if cfg.Postgres.Enabled() {
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		defer pgConn.Close()
		pgCatalog := infra_postgres_catalog.New(pgConn)
		defaults, err := catalog_static.New().Load(ctx)
		if err != nil {
			log.Fatalf("failed to load built-in catalog: %v", err)
		}
		seeded, err := pgCatalog.SeedIfEmpty(ctx, defaults)
		if err != nil {
			log.Fatalf("failed to seed catalog: %v", err)
		}
		if seeded {
			logger.Info("catalog seeded with built-in options")
		}
		catalogRepository = pgCatalog
	} else {
		log.Printf("postgres is not configured, using built-in catalog")
		catalogRepository = catalog_static.New()
	}

	lookup := infra_wikidata.New(cfg.Lookup, infra_wikidata.WithLogger(logger))

	catalogUC := usecase_catalog.New(catalogRepository)
	optionsUC := usecase_options.New(lookup, lookupCache, usecase_options.WithLogger(logger))
	submissionUC := usecase_submission.New(usecase_submission.WithLogger(logger))

	hub := ws_form.NewHub(ws_form.WithHubLogger(logger))
	go hub.Run()
	defer hub.Shutdown()

	controllerPool := http_init.NewControllerPool(cfg.HTTP.Mode)
	controllerPool.AddPage(http_form.New(catalogUC, wsPath, http_form.WithLogger(logger)))
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_catalog.New(catalogUC))
	controllerPool.Add(http_options.New(optionsUC, http_options.WithLogger(logger)))
	controllerPool.Add(http_ratings.New())
	controllerPool.Add(http_submission.New(submissionUC, http_submission.WithLogger(logger)))
	controllerPool.Add(ws_form.NewController(hub, catalogUC, optionsUC,
		ws_form.WithReporter(submissionUC),
		ws_form.WithIdleTimeout(cfg.Session.IdleTimeout),
		ws_form.WithLogger(logger),
	))

	controllerPool.Register()
	controllerPool.RunAll(ctx, cfg.HTTP.Port)
}

func newLogger(mode string) *slog.Logger {
	level := slog.LevelInfo
	if mode == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
