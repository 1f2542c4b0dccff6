package eligibility

import (
	"testing"

	"github.com/Aditya-729/application-rejection-analyzer/internal/core/rulespec"
)

func mustSpec(t *testing.T) *rulespec.Spec {
	t.Helper()
	s, err := rulespec.Load()
	if err != nil {
		t.Fatalf("rulespec.Load(): %v", err)
	}
	return s
}

func TestParseAgePatterns(t *testing.T) {
	spec := mustSpec(t)

	cases := []struct {
		name string
		line string
		min  float64
		max  float64
		excl bool
		// -1 means no bound on that side
	}{
		{"between", "Age must be between 18 and 30", 18, 30, false},
		{"at least", "Applicants must be at least 18 years old", 18, -1, false},
		{"minimum age", "Minimum age: 21", 21, -1, false},
		{"plus", "Open to ages 18+", 18, -1, false},
		{"under exclusive", "Not eligible if under 18 years old", -1, 18, true},
		{"up to inclusive", "Open to applicants up to 18 years old", -1, 18, false},
		{"no older than", "No older than 65 years old", -1, 65, false},
		{"bare at least", "Applicants must be at least 18", 18, -1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseLine(spec, tc.line)
			if !p.ageTriggered {
				t.Fatalf("age not triggered for %q", tc.line)
			}
			checkBound(t, "min", p.age.Min, tc.min)
			checkBound(t, "max", p.age.Max, tc.max)
			if p.age.MaxExclusive != tc.excl {
				t.Fatalf("MaxExclusive = %v, want %v", p.age.MaxExclusive, tc.excl)
			}
		})
	}
}

func checkBound(t *testing.T, what string, got *float64, want float64) {
	t.Helper()
	if want < 0 {
		if got != nil {
			t.Fatalf("%s = %v, want none", what, *got)
		}
		return
	}
	if got == nil {
		t.Fatalf("%s missing, want %v", what, want)
	}
	if *got != want {
		t.Fatalf("%s = %v, want %v", what, *got, want)
	}
}

func TestParseAgeTriggerWithoutBound(t *testing.T) {
	spec := mustSpec(t)
	p := parseLine(spec, "Age restrictions apply to this program")
	if !p.ageTriggered {
		t.Fatalf("expected trigger on bare age mention")
	}
	if !p.age.empty() {
		t.Fatalf("expected empty bound, got %+v", p.age)
	}
}

func TestParseAgeFallbackRejectsImplausible(t *testing.T) {
	spec := mustSpec(t)
	p := parseLine(spec, "Scholarships of up to 5000 available for members only")
	if p.ageTriggered {
		t.Fatalf("5000 should not read as an age bound")
	}
}

func TestParseIncome(t *testing.T) {
	spec := mustSpec(t)

	cases := []struct {
		name string
		line string
		min  float64
		max  float64
	}{
		{"minimum", "Minimum annual income of $30,000 required", 30000, -1},
		{"between", "Household income between 20,000 and 50,000 only", 20000, 50000},
		{"maximum", "Only those who earn less than 25,000 qualify", -1, 25000},
		{"decimal", "Must earn at least 1,234.50 per month", 1234.50, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseLine(spec, tc.line)
			if !p.incomeTriggered {
				t.Fatalf("income not triggered for %q", tc.line)
			}
			checkBound(t, "min", p.income.Min, tc.min)
			checkBound(t, "max", p.income.Max, tc.max)
		})
	}
}

func TestParseIncomeNoDirection(t *testing.T) {
	spec := mustSpec(t)
	p := parseLine(spec, "Annual income of 40,000 is typical for our members")
	if !p.incomeTriggered {
		t.Fatalf("income should trigger")
	}
	if !p.income.empty() {
		t.Fatalf("no directional phrase, want empty bound, got %+v", p.income)
	}
}

func TestParseStudent(t *testing.T) {
	spec := mustSpec(t)

	cases := []struct {
		line string
		want string
	}{
		{"Open to students only", "student"},
		{"You must be a student to apply", "student"},
		{"Not available if you are not a student", "non-student"},
		{"Non-student applicants welcome", "non-student"},
		{"Student discounts may apply", ""},
	}
	for _, tc := range cases {
		if got := parseLine(spec, tc.line).student; got != tc.want {
			t.Fatalf("student(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestParseCountry(t *testing.T) {
	spec := mustSpec(t)

	cases := []struct {
		line string
		want string
	}{
		{"Open to residents of Canada only.", "canada only"},
		{"Citizens of Germany, and their dependents", "germany"},
		{"This offer is available in India; terms apply", "india"},
		{"United States residents welcome", "united states"},
		{"United Kingdom citizens may apply", "united kingdom"},
	}
	for _, tc := range cases {
		if got := parseLine(spec, tc.line).country; got != tc.want {
			t.Fatalf("country(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestParseRequiredDocsAndQualifiers(t *testing.T) {
	spec := mustSpec(t)

	p := parseLine(spec, "You must provide a bank statement from the last 3 months and a passport")
	if len(p.requiredDocs) != 2 {
		t.Fatalf("requiredDocs = %v", p.requiredDocs)
	}
	found := map[string]bool{}
	for _, id := range p.requiredDocs {
		found[id] = true
	}
	if !found["bank_statement"] || !found["passport"] {
		t.Fatalf("requiredDocs = %v", p.requiredDocs)
	}
	if len(p.qualifiers) != 1 || p.qualifiers[0] != "last_3_months" {
		t.Fatalf("qualifiers = %v", p.qualifiers)
	}
}

func TestParseRequiredDocsNeedsTrigger(t *testing.T) {
	spec := mustSpec(t)
	p := parseLine(spec, "A passport is a useful travel companion for students")
	if len(p.requiredDocs) != 0 {
		t.Fatalf("no requirement trigger, got %v", p.requiredDocs)
	}
}

func TestParseContradictoryRange(t *testing.T) {
	spec := mustSpec(t)
	p := parseLine(spec, "Age between 30 and 18 is required")
	if !p.ageTriggered {
		t.Fatalf("age should trigger")
	}
	if !p.age.empty() {
		t.Fatalf("min>max must degrade to empty, got %+v", p.age)
	}
}
