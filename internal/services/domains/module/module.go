// Package module implements the domains service module
package module

import (
	"sitegate/internal/modkit"
	"sitegate/internal/modkit/httpkit"
	"sitegate/internal/modkit/repokit"
	"sitegate/internal/services/domains/domain"
	"sitegate/internal/services/domains/repo"
	"sitegate/internal/services/domains/service"
)

// Ports exposed by the domains module
type Ports struct {
	Table domain.TablePort
}

// Module implements the domains service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new domains module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	provider := service.NewPGProvider(repokit.TxRunner(deps.PG), repo.NewPG())
	cache := service.New(provider, service.Config{TTL: opts.TTL}, deps.Log)

	m := &Module{deps: deps}
	m.ports = Ports{Table: cache}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "domains" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
