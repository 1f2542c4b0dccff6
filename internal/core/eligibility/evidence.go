package eligibility

import (
	"fmt"
	"strings"
	"time"

	"github.com/Aditya-729/application-rejection-analyzer/internal/core/rulespec"
)

const (
	minReadableLen   = 120
	nameThreshold    = 0.5
	addressThreshold = 0.4
)

// inspectDocument runs the single-document checks: readability, expiry
// markers, expiry dates, and the DOB/age cross-check. The checks are
// independent; a short scan with an expiry marker reports both
func inspectDocument(spec *rulespec.Spec, d Document, facts Facts, now time.Time) []Finding {
	var out []Finding

	if len(strings.TrimSpace(d.Text)) < minReadableLen {
		out = append(out, Finding{
			Title:          "Unreadable document",
			Severity:       SeverityHigh,
			Explanation:    fmt.Sprintf("Little or no text could be extracted from %q; it may be a low-quality scan or an unsupported format.", d.Name),
			Recommendation: "Re-upload the document as a clear, text-based file or a higher quality scan.",
			Source:         SourceDocument,
		})
	}

	low := strings.ToLower(d.Text)

	for _, kw := range spec.ExpiryKeywords {
		if strings.Contains(low, kw) {
			out = append(out, Finding{
				Title:          "Document marked as expired or invalid",
				Severity:       SeverityHigh,
				Explanation:    fmt.Sprintf("%q contains the marker %q.", d.Name, kw),
				Recommendation: "Replace the document with a current, valid version.",
				Source:         SourceDocument,
			})
			break
		}
	}

	if containsAny(low, "expiry", "expiration", "valid until") {
		if latest, ok := latestDate(extractDates(d.Text)); ok && latest.Before(now) {
			out = append(out, Finding{
				Title:          "Document appears expired",
				Severity:       SeverityHigh,
				Explanation:    fmt.Sprintf("%q lists %s as its latest validity date, which is in the past.", d.Name, latest.Format("2006-01-02")),
				Recommendation: "Renew the document and upload the current version.",
				Source:         SourceDocument,
			})
		}
	}

	if facts.Age != nil && containsAny(low, "date of birth", "dob") {
		if dob, ok := earliestDate(extractDates(d.Text)); ok {
			computed := ageAt(dob, now)
			diff := computed - int(*facts.Age)
			if diff < 0 {
				diff = -diff
			}
			if diff >= 2 {
				out = append(out, Finding{
					Title:    "Age does not match date of birth",
					Severity: SeverityMedium,
					Explanation: fmt.Sprintf("The date of birth in %q (%s) implies an age of %d, but the provided age is %s.",
						d.Name, dob.Format("2006-01-02"), computed, fmtNum(*facts.Age)),
					Recommendation: "Double-check the age you entered against your documents.",
					Source:         SourceDocument,
				})
			}
		}
	}

	return out
}

// crossInspectDocuments compares identity fields across documents.
// Only the first candidate of the first document holding one is compared
// against the first candidate of each later document; the scan stops at the
// first mismatch. This asymmetric policy is intentional and tested
func crossInspectDocuments(spec *rulespec.Spec, docs []Document) []Finding {
	var out []Finding

	if f, ok := compareCandidates(docs, firstNameCandidate,
		spec.Honorifics, nameThreshold); ok {
		f.Title = "Name mismatch across documents"
		f.Severity = SeverityHigh
		f.Recommendation = "Make sure all documents belong to the same person and names are spelled consistently."
		out = append(out, f)
	}

	if f, ok := compareCandidates(docs, firstAddressCandidate,
		spec.Honorifics, addressThreshold); ok {
		f.Title = "Address mismatch across documents"
		f.Severity = SeverityMedium
		f.Recommendation = "Update documents that show an old address, or explain the difference to the provider."
		out = append(out, f)
	}

	return out
}

// compareCandidates extracts one candidate per document via pick, then
// compares the first document's candidate against each subsequent one.
// Returns a partially filled finding on the first pair below threshold
func compareCandidates(docs []Document, pick func(Document) string, honorifics map[string]struct{}, threshold float64) (Finding, bool) {
	type cand struct {
		doc  string
		text string
	}
	var cands []cand
	for _, d := range docs {
		if c := pick(d); c != "" {
			cands = append(cands, cand{doc: d.Name, text: c})
		}
	}
	if len(cands) < 2 {
		return Finding{}, false
	}

	base := tokenSet(cands[0].text, honorifics)
	for _, other := range cands[1:] {
		if jaccard(base, tokenSet(other.text, honorifics)) < threshold {
			return Finding{
				Explanation: fmt.Sprintf("%q shows %q but %q shows %q.",
					cands[0].doc, cands[0].text, other.doc, other.text),
				Source: SourceDocument,
			}, true
		}
	}
	return Finding{}, false
}

var nameLabels = []string{"full name:", "applicant name:", "name of applicant:", "name:"}

// firstNameCandidate returns the first labelled or printed-caps name line
func firstNameCandidate(d Document) string {
	for _, raw := range strings.Split(d.Text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		low := strings.ToLower(line)
		for _, label := range nameLabels {
			if strings.HasPrefix(low, label) {
				if v := strings.TrimSpace(line[len(label):]); v != "" {
					return v
				}
			}
		}
		if looksLikePrintedName(line) {
			return line
		}
	}
	return ""
}

// looksLikePrintedName accepts bare lines of 2-4 all-caps words, total length
// at least 5, the way legal names appear on scanned IDs
func looksLikePrintedName(line string) bool {
	if len(line) < 5 {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		for _, r := range w {
			if (r < 'A' || r > 'Z') && r != '.' {
				return false
			}
		}
	}
	return true
}

var addressWords = []string{"address", "street", "road", "city", "state", "zip", "postal"}

// firstAddressCandidate returns the first line carrying an address-ish keyword
func firstAddressCandidate(d Document) string {
	for _, raw := range strings.Split(d.Text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if containsAnyOf(strings.ToLower(line), addressWords) {
			return line
		}
	}
	return ""
}
