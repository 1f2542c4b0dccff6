// Package domain holds DTOs for analyzer http and service contracts
package domain

import (
	"github.com/Aditya-729/application-rejection-analyzer/internal/core/eligibility"
	fdom "github.com/Aditya-729/application-rejection-analyzer/internal/services/fetcher/domain"
)

// DocumentInput is one uploaded document already reduced to plain text by the
// client-side pipeline; empty text is allowed and surfaces as unreadable
type DocumentInput struct {
	Name string `json:"name" validate:"required,min=1,max=255" example:"passport_scan.pdf"`
	Text string `json:"text" validate:"max=200000"`
}

// FactsInput are the applicant facts, each independently optional
type FactsInput struct {
	Age           *float64 `json:"age,omitempty"            validate:"omitempty,gte=0,lte=150" example:"24"`
	Income        *float64 `json:"income,omitempty"         validate:"omitempty,gte=0" example:"32000"`
	StudentStatus string   `json:"student_status,omitempty" validate:"omitempty,max=40" example:"student"`
	Country       string   `json:"country,omitempty"        validate:"omitempty,max=80" example:"canada"`
}

// AnalyzeInput runs the engine over caller-supplied rule lines and documents
type AnalyzeInput struct {
	RuleLines         []string        `json:"rule_lines"                   validate:"max=500,dive,max=500"`
	Facts             FactsInput      `json:"facts"`
	Documents         []DocumentInput `json:"documents,omitempty"          validate:"max=5,dive"`
	ExtraRequiredDocs []string        `json:"extra_required_docs,omitempty" validate:"max=20,dive,max=40"`
}

// AnalyzeOutput is the analysis result plus request metadata
type AnalyzeOutput struct {
	AnalysisID         string                `json:"analysis_id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	Findings           []eligibility.Finding `json:"findings"`
	LikelyReasonTitles []string              `json:"likely_reason_titles"`
	Recommendations    []string              `json:"recommendations"`
	RuleLineCount      int                   `json:"rule_line_count" example:"7"`
	DocumentCount      int                   `json:"document_count" example:"2"`
}

// PageInput is one unit of fetched content for line extraction
type PageInput struct {
	URL  string `json:"url"  validate:"omitempty,max=2048" example:"https://example.com/eligibility"`
	Text string `json:"text" validate:"max=500000"`
}

// ExtractLinesInput reduces raw page text to candidate rule lines
type ExtractLinesInput struct {
	Pages []PageInput `json:"pages" validate:"required,min=1,max=20,dive"`
}

// ExtractLinesOutput returns the deduplicated candidate rule lines
type ExtractLinesOutput struct {
	RuleLines []string `json:"rule_lines"`
	Count     int      `json:"count" example:"12"`
}

// AnalyzeURLInput fetches an application URL, extracts rule lines, and runs
// the engine in one call
type AnalyzeURLInput struct {
	URL               string          `json:"url" validate:"required,url,max=2048" example:"https://example.com/apply"`
	Facts             FactsInput      `json:"facts"`
	Documents         []DocumentInput `json:"documents,omitempty"           validate:"max=5,dive"`
	ExtraRequiredDocs []string        `json:"extra_required_docs,omitempty" validate:"max=20,dive,max=40"`
}

// AnalyzeURLOutput adds the fetched pages to the analysis result
type AnalyzeURLOutput struct {
	AnalyzeOutput
	Pages []fdom.Page `json:"pages"`
}
