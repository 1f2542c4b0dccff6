package eligibility

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Aditya-729/application-rejection-analyzer/internal/core/rulespec"
)

// Options tune a single analysis run. Zero values fall back to the embedded
// vocabulary and the wall clock; tests inject both
type Options struct {
	Now  time.Time
	Spec *rulespec.Spec
}

var (
	defaultSpecOnce sync.Once
	defaultSpec     *rulespec.Spec
	defaultSpecErr  error
)

// DefaultSpec loads the embedded vocabulary once per process
func DefaultSpec() (*rulespec.Spec, error) {
	defaultSpecOnce.Do(func() {
		defaultSpec, defaultSpecErr = rulespec.Load()
	})
	return defaultSpec, defaultSpecErr
}

// Analyze is the single entry point of the engine: it parses each rule line,
// checks it against facts, inspects the documents, runs the cross checks, and
// folds everything into a deduplicated result. Pure function of its inputs
// plus the injected now; it never fails
func Analyze(lines []string, facts Facts, docs []Document, extraRequired []string, opt Options) Result {
	spec := opt.Spec
	if spec == nil {
		// the embedded vocabulary is validated at build of the rules file;
		// a load failure here means a broken binary, so panic is correct
		s, err := DefaultSpec()
		if err != nil {
			panic(fmt.Sprintf("eligibility: embedded vocabulary: %v", err))
		}
		spec = s
	}
	now := opt.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	// facts is a copy; normalizing here keeps the residency comparison
	// symmetric with the rule-side normalization
	if facts.Country != "" {
		facts.Country = normalizeCountry(spec, facts.Country)
	}

	var findings []Finding

	// per-line constraints vs facts, collecting doc requirements on the way
	required := make(map[string]struct{}, 8)
	qualifiers := make(map[string]struct{}, 4)
	for _, line := range lines {
		p := parseLine(spec, line)
		findings = append(findings, evaluateLine(line, p, facts)...)
		for _, id := range p.requiredDocs {
			required[id] = struct{}{}
		}
		for _, q := range p.qualifiers {
			qualifiers[q] = struct{}{}
		}
	}

	// caller-supplied extra categories join the union when they are known ids
	for _, extra := range extraRequired {
		id := strings.ToLower(strings.TrimSpace(extra))
		if _, ok := spec.CategoryByID[id]; ok {
			required[id] = struct{}{}
		}
	}

	findings = append(findings, crossCheckDocs(spec, lines, required, docs, now)...)

	for _, d := range docs {
		findings = append(findings, inspectDocument(spec, d, facts, now)...)
	}
	findings = append(findings, crossInspectDocuments(spec, docs)...)

	return aggregate(findings, recencyAdvisories(spec, required, qualifiers))
}

// recencyAdvisories turns bank-statement recency qualifiers into standalone
// recommendation strings
func recencyAdvisories(spec *rulespec.Spec, required, qualifiers map[string]struct{}) []string {
	if _, bank := required["bank_statement"]; !bank || len(qualifiers) == 0 {
		return nil
	}
	var out []string
	for _, q := range spec.RecencyQualifiers {
		if _, ok := qualifiers[q.Tag]; !ok {
			continue
		}
		span := strings.ReplaceAll(strings.TrimPrefix(q.Tag, "last_"), "_", " ")
		out = append(out, fmt.Sprintf("Make sure your bank statement covers the last %s.", span))
	}
	return out
}
