// Package edge provides the HTTP surface of the resolution engine
package edge

import (
	"sitegate/internal/platform/config"
	"sitegate/internal/platform/logger"
	phttp "sitegate/internal/platform/net/http"
	"sitegate/internal/platform/store"

	"sitegate/internal/modkit"
	"sitegate/internal/modkit/httpkit"
	"sitegate/internal/modkit/module"
	"sitegate/internal/modkit/swaggerkit"

	contentmod "sitegate/internal/services/content/module"
	domainsmod "sitegate/internal/services/domains/module"
	metamod "sitegate/internal/services/edge/meta/module"
	resolvehttp "sitegate/internal/services/edge/resolve/http"
	resolvemod "sitegate/internal/services/edge/resolve/module"
	localemod "sitegate/internal/services/locale/module"
	sitectxmod "sitegate/internal/services/sitectx/module"
)

// Options are the edge options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the edge service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Leaf modules first: content reader/locator and the cached domain table
	contentM := contentmod.New(deps)
	cports := contentM.Ports().(contentmod.Ports)

	domainsM := domainsmod.New(deps)
	dports := domainsM.Ports().(domainsmod.Ports)

	// Site context resolution sits on top of both
	sitectxM := sitectxmod.New(deps, sitectxmod.Wiring{
		Reader:  cports.Reader,
		Locator: cports.Locator,
		Table:   dports.Table,
	})
	sports := sitectxM.Ports().(sitectxmod.Ports)

	// The negotiator consumes the domain table and owns the edge middleware
	localeM := localemod.New(deps, localemod.Wiring{Table: dports.Table}, localemod.FromConfig(deps.Cfg))
	lports := localeM.Ports().(localemod.Ports)

	resolveM := resolvemod.New(deps, resolvehttp.Ports{
		Negotiator: lports.Negotiator,
		Table:      dports.Table,
		Resolver:   sports.Resolver,
	})

	mods := []module.Module{
		metamod.New(deps),
		contentM,
		domainsM,
		sitectxM,
		localeM,
		resolveM,
	}

	// versioned API with the common stack plus culture negotiation
	stack := append(httpkit.CommonStack(), localeM.Middleware())
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
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
