// @title         Webcompat Metrics API
// @version       1.0.0
// @description   Read only endpoints for issue count timelines

package main

import (
	"context"

	"github.com/gr00nd/webcompat-metrics-server/internal/platform/config"
	"github.com/gr00nd/webcompat-metrics-server/internal/platform/logger"
	phttp "github.com/gr00nd/webcompat-metrics-server/internal/platform/net/http"
	"github.com/gr00nd/webcompat-metrics-server/internal/platform/store"

	"github.com/gr00nd/webcompat-metrics-server/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (METRICS_API_*)
	root := config.New()
	apiCfg := root.Prefix("METRICS_API_")

	pgCfg := root.Prefix("METRICS_PGSQL_") // pgCfg lives under METRICS_PGSQL_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "webcompat-metrics",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads METRICS_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
