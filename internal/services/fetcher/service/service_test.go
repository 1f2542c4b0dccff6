package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	perr "github.com/Aditya-729/application-rejection-analyzer/internal/platform/errors"
)

var testHints = []string{"eligibility", "requirements", "exclusions", "faq", "rules", "pdf"}

func TestRetrieveFollowsHintedLinks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<p>Apply now. Applicants must be at least 18.</p>
			<a href="/eligibility">Eligibility criteria</a>
			<a href="/about">About us</a>
		</body></html>`))
	})
	mux.HandleFunc("/eligibility", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>Residents of Canada only.</p></body></html>`))
	})
	mux.HandleFunc("/about", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>Our story.</p></body></html>`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := New(Options{Hints: testHints})
	pages, err := s.Retrieve(context.Background(), ts.URL+"/")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected root + eligibility page, got %d: %+v", len(pages), pages)
	}
	if !strings.Contains(pages[0].Text, "at least 18") {
		t.Fatalf("root text = %q", pages[0].Text)
	}
	if !strings.Contains(pages[1].Text, "Residents of Canada") {
		t.Fatalf("linked text = %q", pages[1].Text)
	}
	if !strings.HasSuffix(pages[1].URL, "/eligibility") {
		t.Fatalf("linked url = %q", pages[1].URL)
	}
}

func TestRetrieveRootFailureIsUpstream(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	s := New(Options{Hints: testHints})
	_, err := s.Retrieve(context.Background(), ts.URL)
	if err == nil {
		t.Fatalf("expected error on 500 root")
	}
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("code = %v, want upstream", perr.CodeOf(err))
	}
}

func TestRetrieveLinkedFailureIsBestEffort(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>Eligibility rules must be met.</p>
			<a href="/faq">FAQ</a></body></html>`))
	})
	mux.HandleFunc("/faq", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := New(Options{Hints: testHints})
	pages, err := s.Retrieve(context.Background(), ts.URL+"/")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected just the root page, got %d", len(pages))
	}
}

func TestRetrieveInvalidURL(t *testing.T) {
	s := New(Options{Hints: testHints})
	if _, err := s.Retrieve(context.Background(), "not a url"); err == nil {
		t.Fatalf("expected invalid url error")
	}
}

func TestRetrieveSkipsBinaryContent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>Download the rules below.</p>
			<a href="/rules.pdf">Rules PDF</a></body></html>`))
	})
	mux.HandleFunc("/rules.pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 binary"))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := New(Options{Hints: testHints})
	pages, err := s.Retrieve(context.Background(), ts.URL+"/")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	for _, p := range pages {
		if strings.Contains(p.Text, "%PDF") {
			t.Fatalf("binary body leaked into pages: %+v", p)
		}
	}
}

func TestParseHTMLLinkMatching(t *testing.T) {
	base, _ := url.Parse("https://example.com/apply")
	body := []byte(`<html><body>
		<a href="/docs/requirements.html">Read this</a>
		<a href="/contact">Exclusions explained</a>
		<a href="#top">Back to top</a>
		<a href="mailto:x@example.com">Mail</a>
	</body></html>`)

	_, links, err := parseHTML(body, base, testHints)
	if err != nil {
		t.Fatalf("parseHTML: %v", err)
	}
	want := []string{
		"https://example.com/docs/requirements.html", // href hint
		"https://example.com/contact",                // anchor-text hint
	}
	if len(links) != len(want) {
		t.Fatalf("links = %v, want %v", links, want)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Fatalf("links[%d] = %q, want %q", i, links[i], want[i])
		}
	}
}
