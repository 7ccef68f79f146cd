// Package api provides the HTTP API for the application
package api

import (
	"github.com/gr00nd/webcompat-metrics-server/internal/platform/config"
	"github.com/gr00nd/webcompat-metrics-server/internal/platform/logger"
	phttp "github.com/gr00nd/webcompat-metrics-server/internal/platform/net/http"
	"github.com/gr00nd/webcompat-metrics-server/internal/platform/store"

	"github.com/gr00nd/webcompat-metrics-server/internal/modkit"
	"github.com/gr00nd/webcompat-metrics-server/internal/modkit/httpkit"
	"github.com/gr00nd/webcompat-metrics-server/internal/modkit/module"
	"github.com/gr00nd/webcompat-metrics-server/internal/modkit/swaggerkit"

	metamod "github.com/gr00nd/webcompat-metrics-server/internal/services/api/meta/module"
	timelinemod "github.com/gr00nd/webcompat-metrics-server/internal/services/api/timeline/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := opt.Logger
	if log == nil {
		log = logger.Get()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log: *log,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	mods := []module.Module{
		metamod.New(deps),
		timelinemod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler live outside the versioned prefix
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its prefix
			m.MountRoutes(api)
		}
	})
}
