package eligibility

import (
	"strconv"
	"strings"
)

// dedupe keeps the first occurrence of each (title, explanation, source)
// triple in input order. \x1f never occurs in the fields so the join is a
// safe composite key
func dedupe(in []Finding) []Finding {
	out := make([]Finding, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, f := range in {
		key := f.Title + "\x1f" + f.Explanation + "\x1f" + string(f.Source)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}

// aggregate assigns display ids, collects titles, and builds the
// recommendation set from finding recommendations plus standalone advisories
func aggregate(findings []Finding, advisories []string) Result {
	findings = dedupe(findings)

	res := Result{
		Findings:           findings,
		LikelyReasonTitles: make([]string, 0, len(findings)),
		Recommendations:    make([]string, 0, len(findings)+len(advisories)),
	}

	recSeen := make(map[string]struct{}, len(findings))
	addRec := func(r string) {
		if r == "" {
			return
		}
		if _, dup := recSeen[r]; dup {
			return
		}
		recSeen[r] = struct{}{}
		res.Recommendations = append(res.Recommendations, r)
	}

	for i := range findings {
		res.Findings[i].ID = slug(findings[i].Title) + "-" + strconv.Itoa(i+1)
		res.LikelyReasonTitles = append(res.LikelyReasonTitles, findings[i].Title)
		addRec(findings[i].Recommendation)
	}
	for _, a := range advisories {
		addRec(a)
	}

	return res
}

// slug lowercases and maps non-alphanumeric runs to single hyphens
func slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
