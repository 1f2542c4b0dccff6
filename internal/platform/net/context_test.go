package net_test

import (
	"context"
	"testing"

	pnet "github.com/Aditya-729/application-rejection-analyzer/internal/platform/net"
)

func TestWithRequestAndGetters(t *testing.T) {
	base := context.Background()

	t.Run("sets both ids", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123", "an-abc")

		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := pnet.AnalysisID(ctx); got != "an-abc" {
			t.Fatalf("AnalysisID got %q want %q", got, "an-abc")
		}
	})

	t.Run("empty values are not stored", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "")
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.AnalysisID(ctx); got != "" {
			t.Fatalf("AnalysisID got %q want empty", got)
		}
	})

	t.Run("analysis only", func(t *testing.T) {
		ctx := pnet.WithAnalysis(base, "an-1")
		if got := pnet.AnalysisID(ctx); got != "an-1" {
			t.Fatalf("AnalysisID got %q want %q", got, "an-1")
		}
	})
}
