package middleware

import (
	stdnet "net"
	"net/http"

	"sitegate/internal/platform/store"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// StoreContext annotates the request context with the serving host and the
// request id so the query tracer can correlate SQL with the request
func StoreContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := store.WithSiteHost(r.Context(), hostWithoutPort(r.Host))
			if id := chimw.GetReqID(ctx); id != "" {
				ctx = store.WithRequestID(ctx, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func hostWithoutPort(hostport string) string {
	if h, _, err := stdnet.SplitHostPort(hostport); err == nil {
		return h
	}
	return hostport
}
