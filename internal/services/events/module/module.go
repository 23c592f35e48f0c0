// Package module implements the events service module
package module

import (
	"almanacco/internal/modkit"
	"almanacco/internal/services/events/domain"
	"almanacco/internal/services/events/repo"
	"almanacco/internal/services/events/service"
)

// Ports exposed by the events module
type Ports struct {
	Store domain.StorePort
}

// Module implements the events service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new events module over the shared store
func New(deps modkit.Deps) *Module {
	if deps.DB == nil {
		panic("events module: nil store")
	}
	svc := service.New(repo.NewDynamo(deps.DB.DDB))

	m := &Module{deps: deps}
	m.ports = Ports{Store: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "events" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module; events has no HTTP surface
func (m *Module) MountRoutes(modkit.Router) {}
