package pg

import "context"

type (
	siteHostKey struct{}
	reqIDKey    struct{}
)

// WithSiteHost attaches the serving site host to the context
func WithSiteHost(ctx context.Context, host string) context.Context {
	return context.WithValue(ctx, siteHostKey{}, host)
}

// SiteHost retrieves the serving site host from context if present
func SiteHost(ctx context.Context) (string, bool) {
	v := ctx.Value(siteHostKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// WithRequestID attaches a request id to the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey{}, id)
}

// RequestID retrieves a request id from context if present
func RequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(reqIDKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}
