// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"github.com/Aditya-729/application-rejection-analyzer/internal/core/rulespec"
	"github.com/Aditya-729/application-rejection-analyzer/internal/core/version"
	"github.com/Aditya-729/application-rejection-analyzer/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/vocabulary", h.vocabulary)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"rejection-api"`
	Started string `json:"started"  example:"2026-08-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-08-01T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"vocabulary"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"rejection-api"`
	Started string `json:"started" example:"2026-08-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// VocabularyResponse reports the loaded rule vocabulary and build info
type VocabularyResponse struct {
	VocabularyVersion int               `json:"vocabulary_version" example:"1"`
	RuleKeywords      int               `json:"rule_keywords"      example:"27"`
	DocCategories     int               `json:"doc_categories"     example:"9"`
	Build             version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	vocab := ReadyCheck{Name: "vocabulary", Status: "ok"}
	if _, err := rulespec.Load(); err != nil {
		vocab.Status = "fail"
		vocab.Error = err.Error()
	}

	overall := "ok"
	if vocab.Status != "ok" {
		overall = "fail"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{vocab},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/vocabulary Meta metaVocabulary
// @Summary Rule vocabulary and build info
// @Tags Meta
// @Produce json
// @Success 200 type VocabularyResponse ok
// @Router /meta/vocabulary [get]
func (h *handlers) vocabulary(_ *http.Request) (any, error) {
	spec, err := rulespec.Load()
	if err != nil {
		return nil, err
	}
	return VocabularyResponse{
		VocabularyVersion: spec.Version,
		RuleKeywords:      len(spec.RuleKeywords),
		DocCategories:     len(spec.Categories),
		Build:             version.Info(),
	}, nil
}
