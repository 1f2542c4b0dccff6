// Package api provides the HTTP API for the application
package api

import (
	"github.com/Aditya-729/application-rejection-analyzer/internal/platform/config"
	"github.com/Aditya-729/application-rejection-analyzer/internal/platform/logger"
	phttp "github.com/Aditya-729/application-rejection-analyzer/internal/platform/net/http"

	modkit "github.com/Aditya-729/application-rejection-analyzer/internal/modkit"
	"github.com/Aditya-729/application-rejection-analyzer/internal/modkit/httpkit"
	"github.com/Aditya-729/application-rejection-analyzer/internal/modkit/module"
	"github.com/Aditya-729/application-rejection-analyzer/internal/modkit/swaggerkit"

	analyzermod "github.com/Aditya-729/application-rejection-analyzer/internal/services/analyzer/module"
	metamod "github.com/Aditya-729/application-rejection-analyzer/internal/services/api/meta/module"
	fetchermod "github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the fetcher module first and extract its Retriever port
	fetcher := fetchermod.New(deps)
	retriever := module.MustPortsOf[fetchermod.Ports](fetcher).Retriever

	// Inject the retriever into the analyzer module
	analyzer := analyzermod.New(
		deps,
		modkit.WithPorts(analyzermod.Ports{
			Retriever: retriever,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		fetcher,  // include fetcher so its port is registered
		analyzer, // analyzer depends on the fetcher's Retriever
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
