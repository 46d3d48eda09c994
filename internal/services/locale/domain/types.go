// Package domain defines the locale negotiation types and ports
package domain

import (
	"context"

	domains "sitegate/internal/services/domains/domain"
)

// Outcome is the terminal state of one negotiation pass
type Outcome int

const (
	// OutcomeNoAction means the request is excluded or no culture applies
	OutcomeNoAction Outcome = iota

	// OutcomeSetCultureOnly means a culture was resolved but no redirect is due
	OutcomeSetCultureOnly

	// OutcomeSetCultureAndRedirect means a culture was resolved and the client
	// must be sent to the canonical host/path
	OutcomeSetCultureAndRedirect
)

// String satisfies fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case OutcomeSetCultureOnly:
		return "set_culture"
	case OutcomeSetCultureAndRedirect:
		return "set_culture_and_redirect"
	default:
		return "no_action"
	}
}

// Request is the per-request input to negotiation, extracted once from the
// inbound http request and discarded afterwards
type Request struct {
	// Host is the request host without port
	Host string

	// Path is the raw request path ("/fr/about")
	Path string

	// RawQuery is the query string without the leading "?"
	RawQuery string

	// IsHTTPS reports whether the request arrived over TLS
	IsHTTPS bool

	// CookieCulture is the value of the persisted culture cookie, "" when absent
	CookieCulture string
}

// Resolution is the result of one negotiation pass. Computed per request,
// never cached across requests
type Resolution struct {
	Outcome Outcome

	// Culture is the resolved culture, "" when Outcome is NoAction
	Culture string

	// Domain is the matched domain table entry, zero when none matched
	Domain domains.SiteDomain

	// RedirectTarget is the absolute redirect URL, set only for
	// OutcomeSetCultureAndRedirect
	RedirectTarget string
}

// NegotiatorPort decides the effective culture for a request and whether the
// client must be redirected to the canonical host+path+culture combination
type NegotiatorPort interface {
	// ResolveForRequest runs one negotiation pass. It never fails: store or
	// configuration trouble degrades to NoAction or SetCultureOnly
	ResolveForRequest(ctx context.Context, req Request) Resolution

	// BuildRedirect normalizes targetDomainName into an absolute URL and
	// verifies its host against the current domain table. Returns "" when the
	// target is off-list
	BuildRedirect(ctx context.Context, targetDomainName string, req Request) string

	// URLWithCulture prefixes contentPath with the culture domain's sub-path
	// segment unless the path already carries it
	URLWithCulture(ctx context.Context, contentPath, culture string) string
}
