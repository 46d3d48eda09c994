// Package module implements the sitectx service module
package module

import (
	"sitegate/internal/modkit"
	"sitegate/internal/modkit/httpkit"
	content "sitegate/internal/services/content/domain"
	domains "sitegate/internal/services/domains/domain"
	"sitegate/internal/services/sitectx/domain"
	"sitegate/internal/services/sitectx/service"
)

// Ports exposed by the sitectx module
type Ports struct {
	Resolver domain.ResolverPort
}

// Wiring are the cross-module ports this module consumes
type Wiring struct {
	Reader  content.ReaderPort
	Locator content.LocatorPort
	Table   domains.TablePort
}

// Module implements the sitectx service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new sitectx module from the content and domains ports
func New(deps modkit.Deps, w Wiring) *Module {
	svc := service.New(w.Reader, w.Locator, w.Table, deps.Log)

	m := &Module{deps: deps}
	m.ports = Ports{Resolver: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "sitectx" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
