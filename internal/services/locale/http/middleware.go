// Package http carries the locale negotiation middleware and the culture
// cookie helpers
package http

import (
	stdnet "net"
	"net/http"
	"time"

	pnet "sitegate/internal/platform/net"
	"sitegate/internal/services/locale/domain"
)

// CookieName is the persisted culture cookie
const CookieName = ".UTPro.Culture"

// cookieTTL matches the original 3-day persistence window
const cookieTTL = 3 * 24 * time.Hour

// RequestFrom extracts the negotiation input from an inbound request
func RequestFrom(r *http.Request) domain.Request {
	req := domain.Request{
		Host:     hostOnly(r.Host),
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		IsHTTPS:  r.TLS != nil,
	}
	if c, err := r.Cookie(CookieName); err == nil {
		req.CookieCulture = c.Value
	}
	return req
}

func hostOnly(hostport string) string {
	if h, _, err := stdnet.SplitHostPort(hostport); err == nil {
		return h
	}
	return hostport
}

// WriteCulture persists the culture cookie, skipping the write when the
// client already carries the same value
func WriteCulture(w http.ResponseWriter, r *http.Request, culture string) {
	if culture == "" {
		return
	}
	if c, err := r.Cookie(CookieName); err == nil && c.Value == culture {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    culture,
		Path:     "/",
		Expires:  time.Now().Add(cookieTTL),
		HttpOnly: true,
		Secure:   r.TLS != nil,
	})
}

// Middleware runs one negotiation pass per request, annotating the context
// with the resolved culture and site and persisting the culture cookie.
// When enabled is false the chain is left untouched
func Middleware(neg domain.NegotiatorPort, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := neg.ResolveForRequest(r.Context(), RequestFrom(r))
			if res.Outcome == domain.OutcomeNoAction {
				next.ServeHTTP(w, r)
				return
			}

			ctx := pnet.WithCulture(r.Context(), res.Culture)
			if res.Domain.Name != "" {
				ctx = pnet.WithSite(ctx, res.Domain.Name)
			}
			WriteCulture(w, r, res.Culture)

			if res.Outcome == domain.OutcomeSetCultureAndRedirect {
				http.Redirect(w, r.WithContext(ctx), res.RedirectTarget, http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
