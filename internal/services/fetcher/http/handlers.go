// Package http provides http transport for the fetcher
package http

import (
	stdhttp "net/http"

	"github.com/Aditya-729/application-rejection-analyzer/internal/modkit/httpkit"
	"github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/domain"
	svc "github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/service"
)

// FetchInput asks the retriever for the pages behind an application URL
type FetchInput struct {
	URL string `json:"url" validate:"required,url,max=2048" example:"https://example.com/apply"`
}

// FetchOutput returns the fetched plain-text pages
type FetchOutput struct {
	Pages []domain.Page `json:"pages"`
	Count int           `json:"count" example:"3"`
}

// Register mounts the fetcher routes
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[FetchInput](r, "/fetch", h.fetch)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /fetcher/fetch Fetcher fetch
// @Summary Fetch an application page and hint-matched linked pages as text
// @Tags fetcher
// @Accept json
// @Produce json
// @Param payload body FetchInput true "Fetch"
// @Success 200 {object} FetchOutput "ok"
// @Failure 502 {object} httpkit.Envelope "upstream failure"
// @Router /fetcher/fetch [post]
func (h *handlers) fetch(r *stdhttp.Request, in FetchInput) (any, error) {
	pages, err := h.svc.Retrieve(r.Context(), in.URL)
	if err != nil {
		return nil, err
	}
	return FetchOutput{Pages: pages, Count: len(pages)}, nil
}
