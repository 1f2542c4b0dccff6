// Package module wires the analyzer into the API using modkit
package module

import (
	"net/http"

	modkit "github.com/Aditya-729/application-rejection-analyzer/internal/modkit"
	"github.com/Aditya-729/application-rejection-analyzer/internal/modkit/httpkit"

	ahttp "github.com/Aditya-729/application-rejection-analyzer/internal/services/analyzer/http"
	asvc "github.com/Aditya-729/application-rejection-analyzer/internal/services/analyzer/service"
	fdom "github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/domain"
)

// Module implements the analyzer module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc asvc.Service
}

// Ports declares the injected retriever port this module depends on
type Ports struct {
	Retriever fdom.RetrieverPort
}

// New constructs the analyzer module. The retriever port comes from the
// fetcher module via WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analyzer"),
		modkit.WithPrefix("/analyzer"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Retriever == nil {
		panic("analyzer module requires Retriever port (from services/fetcher)")
	}

	svc, err := asvc.New(asvc.Options{Retriever: injected.Retriever})
	if err != nil {
		panic("analyzer module: " + err.Error())
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = injected

	external := b.Register
	m.register = func(r httpkit.Router) {
		ahttp.Register(r, m.svc)
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
