package store

import (
	"context"

	"sitegate/internal/platform/store/pg"
)

// Site host and request id ride the context so the query tracer can correlate
// SQL with the request being served. The keys live in the pg package; these
// wrappers keep callers off the internal tracer plumbing.

// WithSiteHost attaches the serving site host to the context
func WithSiteHost(ctx context.Context, host string) context.Context {
	return pg.WithSiteHost(ctx, host)
}

// SiteHost retrieves the serving site host from context if present
func SiteHost(ctx context.Context) (string, bool) { return pg.SiteHost(ctx) }

// WithRequestID attaches a request id to the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return pg.WithRequestID(ctx, id)
}

// RequestID retrieves a request id from context if present
func RequestID(ctx context.Context) (string, bool) { return pg.RequestID(ctx) }
