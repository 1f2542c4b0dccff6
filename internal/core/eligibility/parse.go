package eligibility

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Aditya-729/application-rejection-analyzer/internal/core/rulespec"
)

// Range is an open or closed numeric bound parsed from one rule line.
// A nil field means no bound in that direction. MaxExclusive marks a strict
// upper bound, eg "under 18" excludes 18
type Range struct {
	Min          *float64
	Max          *float64
	MaxExclusive bool
}

// empty reports whether no bound was extracted
func (r Range) empty() bool { return r.Min == nil && r.Max == nil }

// parsed is everything the parser recognized in a single rule line.
// Triggered flags stay true even when no bound was extracted so that
// "mentioned but unparseable" still yields a missing-info check downstream
type parsed struct {
	ageTriggered bool
	age          Range

	incomeTriggered bool
	income          Range

	// "", "student", or "non-student"
	student string

	// normalized country requirement, "" when none
	country string

	// category ids required by this line (requirement trigger present)
	requiredDocs []string

	// recency qualifier tags matched on this line
	qualifiers []string
}

// Pattern cascades are ordered (predicate, extractor) pairs tried in sequence
// with early exit; the order encodes precedence and is behavior, not style

var (
	reAgeBetween = regexp.MustCompile(`between\s+(\d+)\s+and\s+(\d+)`)
	reAgeMin     = regexp.MustCompile(`(?:at least|minimum age(?: of)?|min age)\s*:?\s*(\d+)`)
	reAgePlus    = regexp.MustCompile(`(\d+)\s*\+`)
	reAgeUnder   = regexp.MustCompile(`(?:under|below|less than)\s+(\d+)`)
	reAgeMax     = regexp.MustCompile(`(?:up to|maximum age(?: of)?|max age|no older than)\s*:?\s*(\d+)`)

	reNumber = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

	reCountryAfter = regexp.MustCompile(`(?:residents of|citizens of|available in|only in)\s+([^,.;]+)`)
)

type agePattern struct {
	re      *regexp.Regexp
	extract func(m []string) Range
}

var agePatterns = []agePattern{
	{reAgeBetween, func(m []string) Range {
		min, max := parseNum(m[1]), parseNum(m[2])
		if min != nil && max != nil && *min > *max {
			return Range{} // contradictory bounds degrade to unparsed
		}
		return Range{Min: min, Max: max}
	}},
	{reAgeMin, func(m []string) Range { return Range{Min: parseNum(m[1])} }},
	{reAgePlus, func(m []string) Range { return Range{Min: parseNum(m[1])} }},
	{reAgeUnder, func(m []string) Range { return Range{Max: parseNum(m[1]), MaxExclusive: true} }},
	{reAgeMax, func(m []string) Range { return Range{Max: parseNum(m[1])} }},
}

// parseLine runs every classifier over one rule line. Classifiers are
// independent; a single line can match several categories
func parseLine(spec *rulespec.Spec, line string) parsed {
	low := strings.ToLower(line)
	var p parsed

	// income
	if containsAny(low, "income", "annual", "earn") {
		p.incomeTriggered = true
		p.income = parseIncome(low)
	}

	// age: word gate, plus a fallback for bare bound phrasings like
	// "must be at least 18" that omit the word "age" entirely. The fallback
	// only fires on non-income lines whose bounds are plausible as ages
	ageWord := strings.Contains(low, "age") || strings.Contains(low, "years old")
	if ageWord {
		p.ageTriggered = true
	}
	if ageWord || !p.incomeTriggered {
		for _, ap := range agePatterns {
			m := ap.re.FindStringSubmatch(low)
			if m == nil {
				continue
			}
			r := ap.extract(m)
			if ageWord || (!r.empty() && plausibleAge(r)) {
				p.ageTriggered = true
				p.age = r
			}
			break
		}
	}

	// student status
	if strings.Contains(low, "student") {
		switch {
		case containsAny(low, "not a student", "non-student", "non student"):
			p.student = "non-student"
		case containsAny(low, "students only", "must be a student", "student status required", "student-only"):
			p.student = "student"
		}
	}

	// country / residency
	if containsAny(low, "resident", "citizen", "available in", "only in") {
		p.country = parseCountry(spec, low)
	}

	// required documents
	if containsAny(low, "required", "must provide", "must submit", "upload", "provide") {
		for _, cat := range spec.Categories {
			if containsAnyOf(low, cat.Keywords) {
				p.requiredDocs = append(p.requiredDocs, cat.ID)
			}
		}
		for _, q := range spec.RecencyQualifiers {
			if containsAnyOf(low, q.Keywords) {
				p.qualifiers = append(p.qualifiers, q.Tag)
			}
		}
	}

	return p
}

// plausibleAge gates the word-less age fallback: every bound must fit a
// human age so "scholarships up to 5000" never reads as an age rule
func plausibleAge(r Range) bool {
	if r.Min != nil && *r.Min > 130 {
		return false
	}
	if r.Max != nil && *r.Max > 130 {
		return false
	}
	return true
}

// parseIncome extracts a bound from the comma-grouped numeric tokens of low
func parseIncome(low string) Range {
	nums := reNumber.FindAllString(low, -1)
	if len(nums) == 0 {
		return Range{}
	}
	vals := make([]*float64, 0, len(nums))
	for _, n := range nums {
		if v := parseNum(n); v != nil {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return Range{}
	}

	switch {
	case strings.Contains(low, "between") && len(vals) >= 2:
		if *vals[0] > *vals[1] {
			return Range{}
		}
		return Range{Min: vals[0], Max: vals[1]}
	case containsAny(low, "at least", "minimum", "over"):
		return Range{Min: vals[0]}
	case containsAny(low, "under", "below", "less than", "up to", "maximum"):
		return Range{Max: vals[0]}
	default:
		return Range{}
	}
}

// parseCountry captures the country phrase and normalizes it.
// Capture stops at the next comma, period, or semicolon, so trailing words
// like "only" ride along; comparison is containment in either direction so
// that stays harmless
func parseCountry(spec *rulespec.Spec, low string) string {
	if m := reCountryAfter.FindStringSubmatch(low); m != nil {
		return normalizeCountry(spec, m[1])
	}
	// fallback substring checks for the two big multi-alias countries
	if containsAny(low, "united states", "u s", "usa") {
		return "united states"
	}
	if containsAny(low, "united kingdom", "u k") {
		return "united kingdom"
	}
	return ""
}

// normalizeCountry lowercases, strips periods, collapses whitespace, and
// folds known aliases to their canonical name. Captures carry trailing words
// like "only", so an alias is also folded as a whole word inside the phrase,
// longest alias first
func normalizeCountry(spec *rulespec.Spec, s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Join(strings.Fields(s), " ")
	if canon, ok := spec.CountryAliases[s]; ok {
		return canon
	}
	padded := " " + s + " "
	for _, alias := range spec.AliasOrder {
		needle := " " + alias + " "
		if !strings.Contains(padded, needle) {
			continue
		}
		folded := strings.Replace(padded, needle, " "+spec.CountryAliases[alias]+" ", 1)
		return strings.Join(strings.Fields(folded), " ")
	}
	return s
}

// parseNum strips comma grouping and parses a non-negative float
func parseNum(s string) *float64 {
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsAnyOf(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
