package eligibility

import "testing"

var testHonorifics = map[string]struct{}{"mr": {}, "dr": {}}

func TestTokenSet(t *testing.T) {
	got := tokenSet("Mr. JOHN A. O'Brien-Smith", testHonorifics)
	want := []string{"john", "obriensmith"}
	if len(got) != len(want) {
		t.Fatalf("tokenSet = %v", got)
	}
	for _, w := range want {
		if _, ok := got[w]; !ok {
			t.Fatalf("tokenSet missing %q: %v", w, got)
		}
	}
}

func TestJaccard(t *testing.T) {
	set := func(toks ...string) map[string]struct{} {
		m := make(map[string]struct{}, len(toks))
		for _, tk := range toks {
			m[tk] = struct{}{}
		}
		return m
	}

	cases := []struct {
		name string
		a, b map[string]struct{}
		want float64
	}{
		{"identical", set("john", "smith"), set("john", "smith"), 1},
		{"disjoint", set("john", "smith"), set("jane", "doe"), 0},
		{"partial", set("john", "smith"), set("john", "doe"), 1.0 / 3.0},
		{"both empty", set(), set(), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := jaccard(tc.a, tc.b); got != tc.want {
				t.Fatalf("jaccard = %v, want %v", got, tc.want)
			}
		})
	}
}
