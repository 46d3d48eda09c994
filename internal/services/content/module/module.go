// Package module implements the content service module
package module

import (
	"sitegate/internal/modkit"
	"sitegate/internal/modkit/httpkit"
	"sitegate/internal/modkit/repokit"
	"sitegate/internal/services/content/domain"
	"sitegate/internal/services/content/repo"
	"sitegate/internal/services/content/service"
)

// Ports exposed by the content module
type Ports struct {
	Reader  domain.ReaderPort
	Locator domain.LocatorPort
}

// Module implements the content service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new content module
func New(deps modkit.Deps) *Module {
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder)

	m := &Module{deps: deps}
	m.ports = Ports{
		Reader:  svc,
		Locator: svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "content" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
