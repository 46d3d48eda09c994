// Package module implements the locale service module
package module

import (
	"net/http"

	"sitegate/internal/modkit"
	"sitegate/internal/modkit/httpkit"
	domains "sitegate/internal/services/domains/domain"
	"sitegate/internal/services/locale/domain"
	localehttp "sitegate/internal/services/locale/http"
	"sitegate/internal/services/locale/service"
)

// Ports exposed by the locale module
type Ports struct {
	Negotiator domain.NegotiatorPort
}

// Wiring are the cross-module ports this module consumes
type Wiring struct {
	Table domains.TablePort
}

// Module implements the locale service module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New constructs the locale module from the domain table port
func New(deps modkit.Deps, w Wiring, opts Options) *Module {
	svc := service.New(w.Table, service.Config{
		RememberLanguage:    opts.RememberLanguage,
		BackofficeEnabled:   opts.BackofficeEnabled,
		BackofficeHosts:     opts.BackofficeHosts,
		ExcludePathsEnabled: opts.ExcludePathsEnabled,
		ExcludePaths:        opts.ExcludePaths,
		AssetRoot:           opts.AssetRoot,
		DefaultCulture:      opts.DefaultCulture,
	}, deps.Log)

	m := &Module{deps: deps, opts: opts}
	m.ports = Ports{Negotiator: svc}
	return m
}

// Middleware returns the negotiation middleware for the edge server.
// Inert when the remember-language feature is disabled
func (m *Module) Middleware() func(http.Handler) http.Handler {
	return localehttp.Middleware(m.ports.Negotiator, m.opts.RememberLanguage)
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "locale" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
