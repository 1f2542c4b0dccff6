// @title         Rejection Analyzer API
// @version       0.1.0
// @description   Explains which eligibility checks likely fail for an application and why

package main

import (
	"context"

	"github.com/Aditya-729/application-rejection-analyzer/internal/platform/config"
	"github.com/Aditya-729/application-rejection-analyzer/internal/platform/logger"
	phttp "github.com/Aditya-729/application-rejection-analyzer/internal/platform/net/http"

	"github.com/Aditya-729/application-rejection-analyzer/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (REJECTION_API_*)
	root := config.New()
	apiCfg := root.Prefix("REJECTION_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads REJECTION_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
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
