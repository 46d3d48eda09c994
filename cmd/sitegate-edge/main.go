// @title         Sitegate Edge API
// @version       0.1.0
// @description   Site and culture resolution for inbound requests

package main

import (
	"context"

	"sitegate/internal/platform/config"
	"sitegate/internal/platform/logger"
	phttp "sitegate/internal/platform/net/http"
	"sitegate/internal/platform/store"

	"sitegate/internal/services/edge"
)

func main() {
	// service-scoped config for HTTP etc (CORE_EDGE_*)
	root := config.New()
	edgeCfg := root.Prefix("CORE_EDGE_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "sitegate-edge",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_EDGE_PORT / CORE_EDGE_ADDR)
	srv := phttp.NewServer(edgeCfg)

	// mount the edge service
	edge.Mount(
		srv.Router(),
		edge.Options{
			Config:         edgeCfg,
			Store:          st,
			Logger:         *l,
			EnableSwagger:  edgeCfg.MayBool("SWAGGER", true),
			EnableProfiler: edgeCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
