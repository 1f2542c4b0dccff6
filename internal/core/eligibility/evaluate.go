package eligibility

import (
	"fmt"
	"strings"
	"time"

	"github.com/Aditya-729/application-rejection-analyzer/internal/core/rulespec"
)

// evaluateLine checks one parsed rule line against the applicant facts.
// Every check is independent; one line can produce several findings
func evaluateLine(line string, p parsed, facts Facts) []Finding {
	var out []Finding

	if p.ageTriggered {
		out = append(out, evaluateRange(
			line, p.age, facts.Age, "age",
			"Missing age information",
			"Age below minimum requirement",
			"Age above maximum limit",
			"Provide your age so age rules can be checked.",
		)...)
	}

	if p.incomeTriggered {
		out = append(out, evaluateRange(
			line, p.income, facts.Income, "income",
			"Missing income information",
			"Income below minimum requirement",
			"Income above maximum limit",
			"Provide your income so income rules can be checked.",
		)...)
	}

	if p.student != "" {
		out = append(out, evaluateStudent(line, p.student, facts.StudentStatus)...)
	}

	if p.country != "" {
		out = append(out, evaluateCountry(line, p.country, facts.Country)...)
	}

	return out
}

// evaluateRange applies a numeric bound to an optional fact value.
// Absent value yields a low-severity missing-info finding even when the
// bound itself failed to parse; the mention alone makes the fact relevant
func evaluateRange(line string, r Range, val *float64, what, missingTitle, belowTitle, aboveTitle, missingRec string) []Finding {
	if val == nil {
		return []Finding{{
			Title:          missingTitle,
			Severity:       SeverityLow,
			Explanation:    fmt.Sprintf("A rule mentions %s (%q) but no %s was provided.", what, line, what),
			Recommendation: missingRec,
			Source:         SourceRule,
		}}
	}

	var out []Finding
	if r.Min != nil && *val < *r.Min {
		out = append(out, Finding{
			Title:    belowTitle,
			Severity: SeverityHigh,
			Explanation: fmt.Sprintf("Rule %q requires a minimum %s of %s, but the provided %s is %s.",
				line, what, fmtNum(*r.Min), what, fmtNum(*val)),
			Recommendation: fmt.Sprintf("Check whether the %s requirement applies to you or wait until you qualify.", what),
			Source:         SourceRule,
		})
	}
	if r.Max != nil {
		over := *val > *r.Max
		if r.MaxExclusive {
			over = *val >= *r.Max
		}
		if over {
			out = append(out, Finding{
				Title:    aboveTitle,
				Severity: SeverityHigh,
				Explanation: fmt.Sprintf("Rule %q sets a maximum %s of %s, but the provided %s is %s.",
					line, what, fmtNum(*r.Max), what, fmtNum(*val)),
				Recommendation: fmt.Sprintf("Check whether the %s limit applies to you; contact the provider if you believe it does not.", what),
				Source:         SourceRule,
			})
		}
	}
	return out
}

func evaluateStudent(line, want, got string) []Finding {
	if got == "" {
		return []Finding{{
			Title:          "Missing student status",
			Severity:       SeverityLow,
			Explanation:    fmt.Sprintf("A rule constrains student status (%q) but none was provided.", line),
			Recommendation: "Provide your student status so enrollment rules can be checked.",
			Source:         SourceRule,
		}}
	}
	isStudent := strings.EqualFold(got, "student")
	conflict := (want == "student" && !isStudent) || (want == "non-student" && isStudent)
	if !conflict {
		return nil
	}
	return []Finding{{
		Title:    "Student status mismatch",
		Severity: SeverityHigh,
		Explanation: fmt.Sprintf("Rule %q requires status %q, but the provided status is %q.",
			line, want, got),
		Recommendation: "Verify the enrollment requirement; supply proof of enrollment or look for a program without it.",
		Source:         SourceRule,
	}}
}

func evaluateCountry(line, want, got string) []Finding {
	if got == "" {
		return []Finding{{
			Title:          "Missing country information",
			Severity:       SeverityLow,
			Explanation:    fmt.Sprintf("A rule restricts residency (%q) but no country was provided.", line),
			Recommendation: "Provide your country of residence so residency rules can be checked.",
			Source:         SourceRule,
		}}
	}
	// containment in either direction absorbs trailing words like "only"
	if strings.Contains(want, got) || strings.Contains(got, want) {
		return nil
	}
	return []Finding{{
		Title:    "Residency requirement not met",
		Severity: SeverityHigh,
		Explanation: fmt.Sprintf("Rule %q restricts eligibility to %q, but the provided country is %q.",
			line, want, got),
		Recommendation: "Confirm the residency restriction; look for an equivalent program available in your country.",
		Source:         SourceRule,
	}}
}

// docMatches reports whether any uploaded document's name or text contains a
// synonym of the category, case-insensitive
func docMatches(cat rulespec.Category, docs []Document) bool {
	for _, d := range docs {
		name := strings.ToLower(d.Name)
		text := strings.ToLower(d.Text)
		for _, kw := range cat.Keywords {
			if strings.Contains(name, kw) || strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}

// docLooksExpired reports an expiry keyword or a past latest expiry date
func docLooksExpired(spec *rulespec.Spec, d Document, now time.Time) bool {
	low := strings.ToLower(d.Text)
	for _, kw := range spec.ExpiryKeywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	if containsAny(low, "expiry", "expiration", "valid until") {
		if latest, ok := latestDate(extractDates(d.Text)); ok && latest.Before(now) {
			return true
		}
	}
	return false
}

// missingDocFinding is the single canonical form for a missing required
// document so repeat triggers collapse in dedup
func missingDocFinding(cat rulespec.Category) Finding {
	return Finding{
		Title:          "Required document missing: " + cat.Label,
		Severity:       SeverityHigh,
		Explanation:    fmt.Sprintf("The rules require a %s, but no uploaded document matches that category by name or content.", cat.Label),
		Recommendation: fmt.Sprintf("Upload your %s.", cat.Label),
		Source:         SourceCross,
	}
}

// crossCheckDocs runs the whole-ruleset document checks: the required and
// mandatory category scans plus the two direct line scans
func crossCheckDocs(spec *rulespec.Spec, lines []string, required map[string]struct{}, docs []Document, now time.Time) []Finding {
	var out []Finding

	// union of detected and caller-supplied categories, deterministic order
	for _, cat := range spec.Categories {
		if _, need := required[cat.ID]; !need {
			continue
		}
		if !docMatches(cat, docs) {
			out = append(out, missingDocFinding(cat))
		}
	}

	// mandatory categories fire on plain mention, no trigger phrase needed
	for _, id := range spec.Mandatory {
		cat := spec.CategoryByID[id]
		if _, already := required[id]; already {
			continue
		}
		mentioned := false
		for _, line := range lines {
			if containsAnyOf(strings.ToLower(line), cat.Keywords) {
				mentioned = true
				break
			}
		}
		if mentioned && !docMatches(cat, docs) {
			out = append(out, missingDocFinding(cat))
		}
	}

	// passport + valid: a non-expired passport-like document must be present
	for _, line := range lines {
		low := strings.ToLower(line)
		if !strings.Contains(low, "passport") || !strings.Contains(low, "valid") {
			continue
		}
		cat := spec.CategoryByID["passport"]
		var passportDoc *Document
		for i := range docs {
			if docMatches(cat, docs[i:i+1]) {
				passportDoc = &docs[i]
				break
			}
		}
		switch {
		case passportDoc == nil:
			out = append(out, missingDocFinding(cat))
		case docLooksExpired(spec, *passportDoc, now):
			out = append(out, Finding{
				Title:          "Valid passport required",
				Severity:       SeverityHigh,
				Explanation:    fmt.Sprintf("The rules require a valid passport, but %q appears expired or invalid.", passportDoc.Name),
				Recommendation: "Renew your passport and upload the current version.",
				Source:         SourceCross,
			})
		}
		break
	}

	// bank statement mention: a bank-statement-like document must be present
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "bank statement") {
			continue
		}
		cat := spec.CategoryByID["bank_statement"]
		if !docMatches(cat, docs) {
			out = append(out, missingDocFinding(cat))
		}
		break
	}

	return out
}

// fmtNum renders bounds and facts without a trailing .0 for whole numbers
func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
