package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "github.com/Aditya-729/application-rejection-analyzer/internal/platform/errors"
)

type analyzePayload struct {
	Age   *float64 `json:"age,omitempty" validate:"omitempty,gte=0"`
	Name  string   `json:"name" validate:"required,max=10"`
	Count int      `json:"count" validate:"omitempty,min=1,max=5"`
}

func TestParseJSONHappyPath(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"alice","count":3}`))
	got, err := ParseJSON[analyzePayload](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "alice" || got.Count != 3 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(""))
	_, err := ParseJSON[analyzePayload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error for empty body, got %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"a","bogus":1}`))
	_, err := ParseJSON[analyzePayload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error for unknown field, got %v", err)
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"a"} {"name":"b"}`))
	_, err := ParseJSON[analyzePayload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error for trailing data, got %v", err)
	}
}

func TestParseJSONValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing required", body: `{"count":2}`},
		{name: "negative age", body: `{"name":"a","age":-1}`},
		{name: "count too large", body: `{"name":"a","count":9}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/x", strings.NewReader(tt.body))
			_, err := ParseJSON[analyzePayload](r)
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidationFieldAndMessageUsesJSONNames(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"a","age":-3}`))
	_, err := ParseJSON[analyzePayload](r)
	e, ok := perr.As(err)
	if !ok {
		t.Fatalf("expected project error, got %v", err)
	}
	if e.Field() != "age" {
		t.Fatalf("field = %q, want %q", e.Field(), "age")
	}
}
