// Package service implements the analyzer: line extraction, constraint
// checks, and the fetch-then-analyze composition over the retriever port
package service

import (
	"context"

	"github.com/Aditya-729/application-rejection-analyzer/internal/core/eligibility"
	"github.com/Aditya-729/application-rejection-analyzer/internal/core/rulefilter"
	"github.com/Aditya-729/application-rejection-analyzer/internal/core/rulespec"
	"github.com/Aditya-729/application-rejection-analyzer/internal/platform/logger"
	pnet "github.com/Aditya-729/application-rejection-analyzer/internal/platform/net"
	ptime "github.com/Aditya-729/application-rejection-analyzer/internal/platform/time"

	"github.com/Aditya-729/application-rejection-analyzer/internal/services/analyzer/domain"
	fdom "github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/domain"

	perr "github.com/Aditya-729/application-rejection-analyzer/internal/platform/errors"

	"github.com/google/uuid"
)

// Service is the analyzer contract
type Service interface {
	Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.AnalyzeOutput, error)
	ExtractLines(ctx context.Context, in domain.ExtractLinesInput) (domain.ExtractLinesOutput, error)
	AnalyzeURL(ctx context.Context, in domain.AnalyzeURLInput) (domain.AnalyzeURLOutput, error)
}

// Options configure the service; zero values use the embedded vocabulary,
// the wall clock, and no retriever
type Options struct {
	Spec      *rulespec.Spec
	Clock     ptime.Clock
	Retriever fdom.RetrieverPort
}

type service struct {
	spec      *rulespec.Spec
	filter    *rulefilter.Filter
	clock     ptime.Clock
	retriever fdom.RetrieverPort
}

// New constructs the analyzer service
func New(opt Options) (Service, error) {
	spec := opt.Spec
	if spec == nil {
		s, err := rulespec.Load()
		if err != nil {
			return nil, err
		}
		spec = s
	}
	clock := opt.Clock
	if clock == nil {
		clock = ptime.System()
	}
	return &service{
		spec:      spec,
		filter:    rulefilter.New(spec),
		clock:     clock,
		retriever: opt.Retriever,
	}, nil
}

// Analyze runs the engine over caller-supplied rule lines and documents
func (s *service) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.AnalyzeOutput, error) {
	id := uuid.NewString()
	ctx = pnet.WithAnalysis(ctx, id)

	res := s.run(in.RuleLines, in.Facts, in.Documents, in.ExtraRequiredDocs)

	logger.C(ctx).Info().
		Int("rule_lines", len(in.RuleLines)).
		Int("documents", len(in.Documents)).
		Int("findings", len(res.Findings)).
		Msg("analysis complete")

	return toOutput(id, res, len(in.RuleLines), len(in.Documents)), nil
}

// ExtractLines reduces raw page text to deduplicated candidate rule lines
func (s *service) ExtractLines(_ context.Context, in domain.ExtractLinesInput) (domain.ExtractLinesOutput, error) {
	pages := make([]rulefilter.PageText, 0, len(in.Pages))
	for _, p := range in.Pages {
		pages = append(pages, rulefilter.PageText{URL: p.URL, Text: p.Text})
	}
	lines := s.filter.Extract(pages)
	return domain.ExtractLinesOutput{RuleLines: lines, Count: len(lines)}, nil
}

// AnalyzeURL fetches the application page, extracts rule lines, and analyzes.
// A retrieval failure is an upstream error; a reachable page with no
// rule-bearing content is a not-found, so clients can tell the two apart
func (s *service) AnalyzeURL(ctx context.Context, in domain.AnalyzeURLInput) (domain.AnalyzeURLOutput, error) {
	if s.retriever == nil {
		return domain.AnalyzeURLOutput{}, perr.Unavailablef("analyzer: no retriever configured")
	}

	id := uuid.NewString()
	ctx = pnet.WithAnalysis(ctx, id)

	pages, err := s.retriever.Retrieve(ctx, in.URL)
	if err != nil {
		return domain.AnalyzeURLOutput{}, err
	}

	filterPages := make([]rulefilter.PageText, 0, len(pages))
	for _, p := range pages {
		filterPages = append(filterPages, rulefilter.PageText{URL: p.URL, Text: p.Text})
	}
	lines := s.filter.Extract(filterPages)
	if len(lines) == 0 {
		return domain.AnalyzeURLOutput{}, perr.NotFoundf("analyzer: no eligibility rules found at %q", in.URL)
	}

	res := s.run(lines, in.Facts, in.Documents, in.ExtraRequiredDocs)

	logger.C(ctx).Info().
		Str("url", in.URL).
		Int("pages", len(pages)).
		Int("rule_lines", len(lines)).
		Int("findings", len(res.Findings)).
		Msg("url analysis complete")

	return domain.AnalyzeURLOutput{
		AnalyzeOutput: toOutput(id, res, len(lines), len(in.Documents)),
		Pages:         pages,
	}, nil
}

// run maps DTOs onto the engine and executes one analysis
func (s *service) run(lines []string, facts domain.FactsInput, docs []domain.DocumentInput, extra []string) eligibility.Result {
	engDocs := make([]eligibility.Document, 0, len(docs))
	for _, d := range docs {
		engDocs = append(engDocs, eligibility.Document{Name: d.Name, Text: d.Text})
	}
	return eligibility.Analyze(lines, eligibility.Facts{
		Age:           facts.Age,
		Income:        facts.Income,
		StudentStatus: facts.StudentStatus,
		Country:       facts.Country,
	}, engDocs, extra, eligibility.Options{
		Now:  s.clock(),
		Spec: s.spec,
	})
}

func toOutput(id string, res eligibility.Result, lineCount, docCount int) domain.AnalyzeOutput {
	return domain.AnalyzeOutput{
		AnalysisID:         id,
		Findings:           res.Findings,
		LikelyReasonTitles: res.LikelyReasonTitles,
		Recommendations:    res.Recommendations,
		RuleLineCount:      lineCount,
		DocumentCount:      docCount,
	}
}
