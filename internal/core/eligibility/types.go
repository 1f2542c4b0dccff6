// Package eligibility parses rule lines into typed constraints, checks them
// against caller facts and uploaded document text, and folds the outcome into
// a deduplicated set of explainable findings
package eligibility

// Severity buckets findings for display ordering
type Severity string

// Severity levels
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Source records where the evidence for a finding came from
type Source string

// Finding sources
const (
	SourceRule     Source = "rule"     // rule text alone
	SourceDocument Source = "document" // document inspection alone
	SourceCross    Source = "cross"    // rule text correlated with documents
)

// Finding is one explainable eligibility mismatch.
// Identity for deduplication is (Title, Explanation, Source); ID is a
// display-stable slug assigned after dedup and carries no meaning
type Finding struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Explanation    string   `json:"explanation"`
	Recommendation string   `json:"recommendation"`
	Source         Source   `json:"source"`
}

// Facts are the caller-supplied applicant facts, each independently optional.
// Numeric fields are validated non-negative and finite at the HTTP boundary
type Facts struct {
	Age           *float64 `json:"age,omitempty"`
	Income        *float64 `json:"income,omitempty"`
	StudentStatus string   `json:"student_status,omitempty"`
	Country       string   `json:"country,omitempty"`
}

// Document is one uploaded document already reduced to plain text upstream
type Document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Result is the final analysis outcome
type Result struct {
	Findings           []Finding `json:"findings"`
	LikelyReasonTitles []string  `json:"likely_reason_titles"`
	Recommendations    []string  `json:"recommendations"`
}
