// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyAnalysisID ctxKey = "analysis_id"

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, analysisID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if analysisID != "" {
		ctx = context.WithValue(ctx, keyAnalysisID, analysisID)
	}
	return ctx
}

// WithAnalysis annotates context with the analysis id assigned to this run
func WithAnalysis(ctx context.Context, analysisID string) context.Context {
	if analysisID != "" {
		ctx = context.WithValue(ctx, keyAnalysisID, analysisID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// AnalysisID returns the analysis id on the context if present
func AnalysisID(ctx context.Context) string {
	if v, ok := ctx.Value(keyAnalysisID).(string); ok {
		return v
	}
	return ""
}
