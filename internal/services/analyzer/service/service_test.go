package service

import (
	"context"
	"strings"
	"testing"
	"time"

	perr "github.com/Aditya-729/application-rejection-analyzer/internal/platform/errors"
	ptime "github.com/Aditya-729/application-rejection-analyzer/internal/platform/time"

	"github.com/Aditya-729/application-rejection-analyzer/internal/services/analyzer/domain"
	fdom "github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/domain"
)

var testNow = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

type fakeRetriever struct {
	pages []fdom.Page
	err   error
}

func (f fakeRetriever) Retrieve(_ context.Context, _ string) ([]fdom.Page, error) {
	return f.pages, f.err
}

func newService(t *testing.T, r fdom.RetrieverPort) Service {
	t.Helper()
	s, err := New(Options{Clock: ptime.Fixed(testNow), Retriever: r})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func fptr(v float64) *float64 { return &v }

func TestAnalyze(t *testing.T) {
	s := newService(t, nil)

	out, err := s.Analyze(context.Background(), domain.AnalyzeInput{
		RuleLines: []string{"Applicants must be at least 18"},
		Facts:     domain.FactsInput{Age: fptr(17)},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if out.AnalysisID == "" {
		t.Fatalf("expected analysis id")
	}
	if out.RuleLineCount != 1 || out.DocumentCount != 0 {
		t.Fatalf("counts = %d/%d", out.RuleLineCount, out.DocumentCount)
	}
	found := false
	for _, f := range out.Findings {
		if f.Title == "Age below minimum requirement" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected age finding, got %v", out.LikelyReasonTitles)
	}
	if len(out.LikelyReasonTitles) != len(out.Findings) {
		t.Fatalf("titles/findings mismatch")
	}
}

func TestAnalyzeFreshIDPerRequest(t *testing.T) {
	s := newService(t, nil)
	in := domain.AnalyzeInput{RuleLines: []string{"Must be a student."}}

	a, err := s.Analyze(context.Background(), in)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	b, err := s.Analyze(context.Background(), in)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.AnalysisID == b.AnalysisID {
		t.Fatalf("analysis ids must be unique per request")
	}
}

func TestExtractLines(t *testing.T) {
	s := newService(t, nil)

	out, err := s.ExtractLines(context.Background(), domain.ExtractLinesInput{
		Pages: []domain.PageInput{
			{URL: "a", Text: "Applicants must be at least 18 years old.\nshort\nApplicants must be at least 18 years old."},
		},
	})
	if err != nil {
		t.Fatalf("ExtractLines: %v", err)
	}
	if out.Count != 1 || len(out.RuleLines) != 1 {
		t.Fatalf("expected one deduplicated line, got %v", out.RuleLines)
	}
}

func TestAnalyzeURL(t *testing.T) {
	s := newService(t, fakeRetriever{pages: []fdom.Page{
		{URL: "https://example.com/eligibility", Text: "Open to residents of Canada only.\nUnrelated marketing copy for everyone"},
	}})

	out, err := s.AnalyzeURL(context.Background(), domain.AnalyzeURLInput{
		URL:   "https://example.com/apply",
		Facts: domain.FactsInput{Country: "france"},
	})
	if err != nil {
		t.Fatalf("AnalyzeURL: %v", err)
	}
	if len(out.Pages) != 1 {
		t.Fatalf("pages = %d", len(out.Pages))
	}
	found := false
	for _, f := range out.Findings {
		if f.Title == "Residency requirement not met" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected residency finding, got %v", out.LikelyReasonTitles)
	}
}

func TestAnalyzeURLUpstreamError(t *testing.T) {
	s := newService(t, fakeRetriever{err: perr.Upstreamf("status 500")})

	_, err := s.AnalyzeURL(context.Background(), domain.AnalyzeURLInput{URL: "https://example.com/apply"})
	if err == nil {
		t.Fatalf("expected upstream error")
	}
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("code = %v, want upstream", perr.CodeOf(err))
	}
}

func TestAnalyzeURLNoRules(t *testing.T) {
	s := newService(t, fakeRetriever{pages: []fdom.Page{
		{URL: "https://example.com", Text: "Nothing but marketing fluff and a contact form"},
	}})

	_, err := s.AnalyzeURL(context.Background(), domain.AnalyzeURLInput{URL: "https://example.com"})
	if err == nil {
		t.Fatalf("expected not-found for zero rule lines")
	}
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
}

func TestAnalyzeURLWithoutRetriever(t *testing.T) {
	s := newService(t, nil)
	_, err := s.AnalyzeURL(context.Background(), domain.AnalyzeURLInput{URL: "https://example.com"})
	if err == nil || !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestAnalyzeUsesInjectedClock(t *testing.T) {
	s := newService(t, nil)

	out, err := s.Analyze(context.Background(), domain.AnalyzeInput{
		Documents: []domain.DocumentInput{
			{Name: "card.pdf", Text: "This card is valid until 2019-01-01"},
		},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	found := false
	for _, f := range out.Findings {
		if f.Title == "Document appears expired" {
			found = true
		}
	}
	if !found {
		t.Fatalf("fixed clock should flag 2019 expiry, got %v", out.LikelyReasonTitles)
	}
	if !strings.Contains(strings.Join(out.Recommendations, " "), "Renew") {
		t.Fatalf("expected renewal recommendation, got %v", out.Recommendations)
	}
}
