// Package rulespec loads the embedded rules.json vocabulary and compiles it
// into lowercased lookup structures for the line filter and the eligibility engine
package rulespec

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed rules.json
var embedded []byte

type rawCategory struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

type rawQualifier struct {
	Tag      string   `json:"tag"`
	Keywords []string `json:"keywords"`
}

type rawSpec struct {
	Version             int               `json:"version"`
	Meta                map[string]any    `json:"meta"`
	RuleKeywords        []string          `json:"rule_keywords"`
	LinkHints           []string          `json:"link_hints"`
	DocCategories       []rawCategory     `json:"doc_categories"`
	MandatoryCategories []string          `json:"mandatory_categories"`
	RecencyQualifiers   []rawQualifier    `json:"recency_qualifiers"`
	CountryAliases      map[string]string `json:"country_aliases"`
	Honorifics          []string          `json:"honorifics"`
	ExpiryKeywords      []string          `json:"expiry_keywords"`
}

// Category is a document category with its synonym keywords
type Category struct {
	ID       string
	Label    string
	Keywords []string // lowercased, deduped, original order
}

// Qualifier maps a recency tag to its trigger phrases
type Qualifier struct {
	Tag      string
	Keywords []string
}

// Spec is the compiled vocabulary used across the analysis pipeline
type Spec struct {
	Version int
	Meta    map[string]any

	// Rule line gate: a line survives filtering only if it contains one of these
	RuleKeywords []string

	// Anchor-text hints for following links from an application page
	LinkHints []string

	// Document categories keyed by id, plus ordered slice for deterministic scans
	Categories   []Category
	CategoryByID map[string]Category

	// Categories checked on plain mention even without a requirement trigger
	Mandatory []string

	RecencyQualifiers []Qualifier

	// alias -> canonical country name, all lowercased
	CountryAliases map[string]string

	// alias keys ordered longest first for whole-word folding inside phrases
	AliasOrder []string

	// Honorific set used by name-token similarity
	Honorifics map[string]struct{}

	ExpiryKeywords []string
}

// Load returns the compiled vocabulary from the embedded rules.json
func Load() (*Spec, error) {
	var rs rawSpec
	if err := json.Unmarshal(embedded, &rs); err != nil {
		return nil, fmt.Errorf("rulespec: parse rules.json: %w", err)
	}
	if rs.Version != 1 {
		return nil, fmt.Errorf("rulespec: unsupported rules.json version %d (want 1)", rs.Version)
	}

	s := &Spec{
		Version:        rs.Version,
		Meta:           rs.Meta,
		RuleKeywords:   lowerDedup(rs.RuleKeywords),
		LinkHints:      lowerDedup(rs.LinkHints),
		CategoryByID:   make(map[string]Category, len(rs.DocCategories)),
		CountryAliases: make(map[string]string, len(rs.CountryAliases)),
		Honorifics:     make(map[string]struct{}, len(rs.Honorifics)),
		ExpiryKeywords: lowerDedup(rs.ExpiryKeywords),
	}

	for _, c := range rs.DocCategories {
		id := strings.ToLower(strings.TrimSpace(c.ID))
		if id == "" {
			continue
		}
		cat := Category{
			ID:       id,
			Label:    strings.TrimSpace(c.Label),
			Keywords: lowerDedup(c.Keywords),
		}
		if cat.Label == "" {
			cat.Label = id
		}
		if len(cat.Keywords) == 0 {
			return nil, fmt.Errorf("rulespec: category %q has no keywords", id)
		}
		s.Categories = append(s.Categories, cat)
		s.CategoryByID[id] = cat
	}

	for _, m := range rs.MandatoryCategories {
		id := strings.ToLower(strings.TrimSpace(m))
		if id == "" {
			continue
		}
		if _, ok := s.CategoryByID[id]; !ok {
			return nil, fmt.Errorf("rulespec: mandatory category %q not declared in doc_categories", id)
		}
		s.Mandatory = append(s.Mandatory, id)
	}

	for _, q := range rs.RecencyQualifiers {
		tag := strings.ToLower(strings.TrimSpace(q.Tag))
		if tag == "" {
			continue
		}
		s.RecencyQualifiers = append(s.RecencyQualifiers, Qualifier{
			Tag:      tag,
			Keywords: lowerDedup(q.Keywords),
		})
	}

	for alias, canon := range rs.CountryAliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		canon = strings.ToLower(strings.TrimSpace(canon))
		if alias == "" || canon == "" {
			continue
		}
		s.CountryAliases[alias] = canon
	}

	for _, h := range rs.Honorifics {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			s.Honorifics[h] = struct{}{}
		}
	}

	// Deterministic iteration for tests/debug
	sort.Slice(s.Categories, func(i, j int) bool { return s.Categories[i].ID < s.Categories[j].ID })

	for alias := range s.CountryAliases {
		s.AliasOrder = append(s.AliasOrder, alias)
	}
	sort.Slice(s.AliasOrder, func(i, j int) bool {
		a, b := s.AliasOrder[i], s.AliasOrder[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return s, nil
}

// lowerDedup lowercases, trims, and dedups keeping first-seen order
func lowerDedup(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
