// Package service implements the content retriever: it fetches the
// application page, follows hint-matched links one level deep, and reduces
// each HTML page to plain text
package service

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Aditya-729/application-rejection-analyzer/internal/platform/logger"

	"github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/domain"

	perr "github.com/Aditya-729/application-rejection-analyzer/internal/platform/errors"
)

// Options tune the retriever
type Options struct {
	Timeout      time.Duration
	MaxLinked    int
	MaxBodyBytes int64
	UserAgent    string

	// anchor text / href substrings worth following from the root page
	Hints []string
}

// Service is the retriever contract, also exposed as the module's port
type Service interface {
	domain.RetrieverPort
}

type service struct {
	client *http.Client
	opt    Options
}

// New constructs the retriever with option defaults filled in
func New(opt Options) Service {
	if opt.Timeout <= 0 {
		opt.Timeout = 15 * time.Second
	}
	if opt.MaxLinked <= 0 {
		opt.MaxLinked = 6
	}
	if opt.MaxBodyBytes <= 0 {
		opt.MaxBodyBytes = 2 << 20
	}
	if opt.UserAgent == "" {
		opt.UserAgent = "rejection-analyzer/1.0"
	}
	return &service{
		client: &http.Client{Timeout: opt.Timeout},
		opt:    opt,
	}
}

// Retrieve fetches the root page and up to MaxLinked hint-matched pages.
// Only the root fetch is fatal; linked pages are best effort
func (s *service) Retrieve(ctx context.Context, rawURL string) ([]domain.Page, error) {
	base, err := url.Parse(rawURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, perr.InvalidArgf("fetcher: invalid url %q", rawURL)
	}

	log := logger.C(ctx)

	rootText, links, err := s.fetchPage(ctx, base.String(), base)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "fetcher: fetch %q", base.String())
	}

	pages := make([]domain.Page, 0, 1+s.opt.MaxLinked)
	if strings.TrimSpace(rootText) != "" {
		pages = append(pages, domain.Page{URL: base.String(), Text: rootText})
	}

	seen := map[string]struct{}{base.String(): {}}
	for _, link := range links {
		if len(pages) > s.opt.MaxLinked {
			break
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}

		text, _, err := s.fetchPage(ctx, link, base)
		if err != nil {
			log.Debug().Err(err).Str("url", link).Msg("linked page skipped")
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, domain.Page{URL: link, Text: text})
	}

	return pages, nil
}

// fetchPage gets one URL and returns its text plus hint-matched absolute links
func (s *service) fetchPage(ctx context.Context, rawURL string, base *url.URL) (string, []string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("User-Agent", s.opt.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, perr.Upstreamf("status %d from %q", resp.StatusCode, rawURL)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") && !strings.Contains(ct, "text/plain") {
		// binary or otherwise undecodable here; the client-side pipeline
		// owns document conversion
		return "", nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.opt.MaxBodyBytes))
	if err != nil {
		return "", nil, err
	}

	if strings.Contains(ct, "text/plain") {
		return string(body), nil, nil
	}
	return parseHTML(body, base, s.opt.Hints)
}
