// Package module wires the skill webhook using modkit
package module

import (
	"net/http"

	"almanacco/internal/modkit"
	"almanacco/internal/services/skill/domain"
	skillhttp "almanacco/internal/services/skill/http"
	"almanacco/internal/services/skill/service"
)

// Module implements the skill module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	register func(modkit.Router)

	router domain.RouterPort
}

// New constructs the skill module. The events store must be injected via
// modkit.WithPorts(skill/domain.Ports{...}).
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	cfg := FromConfig(deps.Cfg)

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("skill"),
		modkit.WithPrefix(cfg.Prefix),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("skill module: expected WithPorts(skill/domain.Ports)")
	}
	if ports.Store == nil {
		panic("skill module: Ports missing Store")
	}

	rt := service.New(ports.Store)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		router: rt,
	}

	external := b.Register
	m.register = func(r modkit.Router) {
		skillhttp.Register(r, m.router)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.router }

// Router exposes the turn router for in-process callers
func (m *Module) Router() domain.RouterPort { return m.router }

// MountRoutes mounts the webhook under the module prefix
func (m *Module) MountRoutes(r modkit.Router) {
	r.Route(m.prefix, func(rr modkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}
