// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyCulture ctxKey = "culture"
	keySite    ctxKey = "site"
)

// WithRequest annotates context with the request id used for correlation
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithCulture annotates context with the resolved culture for this request
// culture is request scoped only and never stored in process globals
func WithCulture(ctx context.Context, culture string) context.Context {
	if culture != "" {
		ctx = context.WithValue(ctx, keyCulture, culture)
	}
	return ctx
}

// WithSite annotates context with the matched site domain name
func WithSite(ctx context.Context, site string) context.Context {
	if site != "" {
		ctx = context.WithValue(ctx, keySite, site)
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

// Culture returns the resolved culture on the context if present
func Culture(ctx context.Context) string {
	if v, ok := ctx.Value(keyCulture).(string); ok {
		return v
	}
	return ""
}

// Site returns the matched site domain name on the context if present
func Site(ctx context.Context) string {
	if v, ok := ctx.Value(keySite).(string); ok {
		return v
	}
	return ""
}
