package strings

import "testing"

func TestMustPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "analyzer", want: "/analyzer"},
		{name: "leading slash kept single", in: "/analyzer", want: "/analyzer"},
		{name: "trailing slash stripped", in: "analyzer/", want: "/analyzer"},
		{name: "both trimmed", in: "  /fetcher/  ", want: "/fetcher"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustPrefix(tt.in); got != tt.want {
				t.Fatalf("MustPrefix(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustPrefixPanicsOnRoot(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for bare root")
		}
	}()
	MustPrefix("  / ")
}

func TestCollapseSpace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tabs and runs", in: "Must   be\t18\n or older ", want: "Must be 18 or older"},
		{name: "already clean", in: "abc", want: "abc"},
		{name: "all whitespace", in: " \t\n ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseSpace(tt.in); got != tt.want {
				t.Fatalf("CollapseSpace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestContainsAny(t *testing.T) {
	subs := []string{"income", "earn"}
	if !ContainsAny("Annual INCOME of $20,000", subs) {
		t.Fatalf("expected case-insensitive hit")
	}
	if ContainsAny("age limit only", subs) {
		t.Fatalf("unexpected hit")
	}
}

func TestPtrAndDeref(t *testing.T) {
	if Ptr("") != nil {
		t.Fatalf("Ptr of empty should be nil")
	}
	s := "x"
	if Deref(Ptr(s)) != "x" || Deref(nil) != "" {
		t.Fatalf("Deref roundtrip failed")
	}
}
