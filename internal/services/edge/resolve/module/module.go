// Package module wires the resolve API endpoints
package module

import (
	"sitegate/internal/modkit"
	"sitegate/internal/modkit/httpkit"
	resolvehttp "sitegate/internal/services/edge/resolve/http"
)

// Module implements the resolve API module
type Module struct {
	deps  modkit.Deps
	ports resolvehttp.Ports
}

// New constructs the resolve module from the negotiation and resolution ports
func New(deps modkit.Deps, p resolvehttp.Ports) *Module {
	return &Module{deps: deps, ports: p}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "resolve" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	resolvehttp.Register(r, m.ports)
}
