// Package rulefilter extracts candidate eligibility rule lines from raw page text
// Pipeline order per line
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Remove zero-width and format chars
// 4 Width fold fullwidth to ASCII
// 5 Collapse whitespace to single spaces and trim
// 6 Length gate 8..280
// 7 Keyword gate against the vocabulary, lowercased
// Case is preserved on the output line; only the gate lowercases
package rulefilter

import (
	"strings"
	"sync"
	"unicode"

	"github.com/Aditya-729/application-rejection-analyzer/internal/core/rulespec"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const (
	minLineLen = 8
	maxLineLen = 280
)

// PageText is one retrieved page worth of plain text
type PageText struct {
	URL  string
	Text string
}

// Filter holds the keyword vocabulary; safe for concurrent use
type Filter struct {
	keywords []string
}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// New constructs a Filter over the rule vocabulary
func New(spec *rulespec.Spec) *Filter {
	return &Filter{keywords: spec.RuleKeywords}
}

// Extract splits page texts into lines, normalizes each one, and keeps lines
// that pass the length and keyword gates. Exact duplicates across pages
// collapse to one; first-seen order is preserved. Pure function of its input
func (f *Filter) Extract(pages []PageText) []string {
	var out []string
	seen := make(map[string]struct{}, 64)
	for _, pg := range pages {
		for _, raw := range splitLines(pg.Text) {
			line := Normalize(raw)
			if len(line) < minLineLen || len(line) > maxLineLen {
				continue
			}
			if !f.matches(line) {
				continue
			}
			if _, dup := seen[line]; dup {
				continue
			}
			seen[line] = struct{}{}
			out = append(out, line)
		}
	}
	return out
}

// matches reports whether the lowercased line contains any vocabulary keyword
func (f *Filter) matches(line string) bool {
	low := strings.ToLower(line)
	for _, kw := range f.keywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}

// Normalize repairs, folds, and whitespace-collapses a single line.
// Case is preserved; downstream parsing lowercases where it needs to
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-4 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 5 collapse whitespace runs to single spaces and trim
	return strings.Join(strings.Fields(ns), " ")
}

// splitLines splits on any of \n, \r\n, or bare \r
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}
