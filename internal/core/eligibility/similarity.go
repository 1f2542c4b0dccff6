package eligibility

import "strings"

// tokenSet lowercases, strips non-alphanumerics, and drops 1-char tokens and
// honorifics, returning the remaining tokens as a set
func tokenSet(s string, honorifics map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, 8)
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		var b strings.Builder
		for _, r := range tok {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		t := b.String()
		if len(t) <= 1 {
			continue
		}
		if _, ok := honorifics[t]; ok {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}

// jaccard is intersection over union of the two token sets.
// Two empty sets compare as 0 so degenerate candidates never pass a threshold
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
