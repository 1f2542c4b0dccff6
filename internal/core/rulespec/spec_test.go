package rulespec

import "testing"

func TestLoad(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if s.Version == 0 {
		t.Fatalf("expected non-zero version")
	}
	if len(s.RuleKeywords) == 0 {
		t.Fatalf("expected rule keywords")
	}
	if len(s.LinkHints) == 0 {
		t.Fatalf("expected link hints")
	}
	for _, want := range []string{"eligibility", "requirements", "exclusions", "faq", "rules", "pdf"} {
		found := false
		for _, h := range s.LinkHints {
			if h == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("link hint %q missing", want)
		}
	}
}

func TestLoadCategories(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	for _, id := range []string{"passport", "transcript", "bank_statement", "income_proof", "id", "visa", "address_proof"} {
		cat, ok := s.CategoryByID[id]
		if !ok {
			t.Fatalf("category %q missing", id)
		}
		if len(cat.Keywords) == 0 {
			t.Fatalf("category %q has no keywords", id)
		}
	}
	// Every mandatory category must resolve
	for _, id := range s.Mandatory {
		if _, ok := s.CategoryByID[id]; !ok {
			t.Fatalf("mandatory category %q undeclared", id)
		}
	}
}

func TestCountryAliasesAndQualifiers(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if got := s.CountryAliases["usa"]; got != "united states" {
		t.Fatalf("usa alias = %q", got)
	}
	if got := s.CountryAliases["uk"]; got != "united kingdom" {
		t.Fatalf("uk alias = %q", got)
	}
	tags := map[string]bool{}
	for _, q := range s.RecencyQualifiers {
		tags[q.Tag] = true
		if len(q.Keywords) == 0 {
			t.Fatalf("qualifier %q has no keywords", q.Tag)
		}
	}
	for _, want := range []string{"last_3_months", "last_6_months", "last_12_months"} {
		if !tags[want] {
			t.Fatalf("qualifier %q missing", want)
		}
	}
}

func TestLowerDedup(t *testing.T) {
	got := lowerDedup([]string{" Foo ", "foo", "BAR", "", "bar"})
	if len(got) != 2 || got[0] != "foo" || got[1] != "bar" {
		t.Fatalf("lowerDedup = %v", got)
	}
}
