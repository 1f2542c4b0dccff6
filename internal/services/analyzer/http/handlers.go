// Package http provides http transport for the analyzer
package http

import (
	stdhttp "net/http"

	"github.com/Aditya-729/application-rejection-analyzer/internal/modkit/httpkit"
	"github.com/Aditya-729/application-rejection-analyzer/internal/services/analyzer/domain"
	svc "github.com/Aditya-729/application-rejection-analyzer/internal/services/analyzer/service"
)

// Register mounts the analyzer routes
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)
	httpkit.PostJSON[domain.ExtractLinesInput](r, "/extract-lines", h.extractLines)
	httpkit.PostJSON[domain.AnalyzeURLInput](r, "/analyze-url", h.analyzeURL)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /analyzer/analyze Analyzer analyze
// @Summary Analyze rule lines and documents against applicant facts
// @Tags analyzer
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Analyze"
// @Success 200 {object} domain.AnalyzeOutput "ok"
// @Router /analyzer/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}

// swagger:route POST /analyzer/extract-lines Analyzer extractLines
// @Summary Extract candidate rule lines from raw page text
// @Tags analyzer
// @Accept json
// @Produce json
// @Param payload body domain.ExtractLinesInput true "ExtractLines"
// @Success 200 {object} domain.ExtractLinesOutput "ok"
// @Router /analyzer/extract-lines [post]
func (h *handlers) extractLines(r *stdhttp.Request, in domain.ExtractLinesInput) (any, error) {
	return h.svc.ExtractLines(r.Context(), in)
}

// swagger:route POST /analyzer/analyze-url Analyzer analyzeURL
// @Summary Fetch an application URL and analyze its eligibility rules
// @Tags analyzer
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeURLInput true "AnalyzeURL"
// @Success 200 {object} domain.AnalyzeURLOutput "ok"
// @Failure 404 {object} httpkit.Envelope "no eligibility rules found"
// @Failure 502 {object} httpkit.Envelope "upstream fetch failure"
// @Router /analyzer/analyze-url [post]
func (h *handlers) analyzeURL(r *stdhttp.Request, in domain.AnalyzeURLInput) (any, error) {
	return h.svc.AnalyzeURL(r.Context(), in)
}
