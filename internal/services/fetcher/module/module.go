// Package module wires the fetcher into the API using modkit
package module

import (
	"net/http"

	"github.com/Aditya-729/application-rejection-analyzer/internal/core/rulespec"
	modkit "github.com/Aditya-729/application-rejection-analyzer/internal/modkit"
	"github.com/Aditya-729/application-rejection-analyzer/internal/modkit/httpkit"

	"github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/domain"
	fhttp "github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/http"
	fsvc "github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/service"
)

// Module implements the fetcher module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc fsvc.Service
}

// Ports exposes the retriever for cross-module injection
type Ports struct {
	Retriever domain.RetrieverPort
}

// New constructs the fetcher module (config-driven)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("fetcher"),
		modkit.WithPrefix("/fetcher"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	if len(cfg.Hints) == 0 {
		if spec, err := rulespec.Load(); err == nil {
			cfg.Hints = spec.LinkHints
		}
	}

	svc := fsvc.New(fsvc.Options{
		Timeout:      cfg.Timeout,
		MaxLinked:    cfg.MaxLinked,
		MaxBodyBytes: cfg.MaxBodyBytes,
		UserAgent:    cfg.UserAgent,
		Hints:        cfg.Hints,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Retriever: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		fhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Middlewares returns the module middleware chain
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module's exposed ports
func (m *Module) Ports() any { return m.ports }
