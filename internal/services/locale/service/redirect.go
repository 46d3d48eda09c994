package service

import (
	"context"
	"strings"

	perr "sitegate/internal/platform/errors"
	"sitegate/internal/services/locale/domain"
)

// AddScheme normalizes a domain name or URL into something addressable:
// app-relative paths and already-schemed URLs pass through, anything else is
// assumed https
func AddScheme(u string) string {
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "/"),
		strings.HasPrefix(u, "http://"),
		strings.HasPrefix(u, "https://"):
		return u
	default:
		return "https://" + u
	}
}

// hostOf extracts the host part of a domain-table name or URL,
// "https://example.com/fr" and "example.com/fr" both yield "example.com"
func hostOf(name string) string {
	name = strings.TrimPrefix(name, "https://")
	name = strings.TrimPrefix(name, "http://")
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name = name[:i]
	}
	return name
}

// BuildRedirect implements domain.NegotiatorPort. The original request path
// and query are carried over unmodified; only scheme, host and the optional
// leading site segment come from the target
func (s *Service) BuildRedirect(
	ctx context.Context,
	targetDomainName string,
	req domain.Request,
) string {
	prefix := AddScheme(targetDomainName)
	if prefix == "" {
		return ""
	}

	// app-relative targets stay on the current host, no guard needed
	if !strings.HasPrefix(prefix, "/") {
		if err := s.guardRedirect(ctx, prefix); err != nil {
			s.log.Warn().Err(err).Str("target", targetDomainName).Str("host", req.Host).
				Msg("redirect target rejected")
			return ""
		}
	}

	out := strings.TrimSuffix(prefix, "/") + req.Path
	if req.RawQuery != "" {
		out += "?" + req.RawQuery
	}
	return out
}

// guardRedirect enforces the open-redirect invariant: the target host must be
// the host of some current domain-table entry
func (s *Service) guardRedirect(ctx context.Context, target string) error {
	host := hostOf(target)
	if host == "" {
		return perr.RedirectRejectedf("redirect target %q has no host", target)
	}
	for _, d := range s.table.All(ctx) {
		if strings.EqualFold(hostOf(d.Name), host) {
			return nil
		}
	}
	return perr.RedirectRejectedf("redirect host %q is not in the domain table", host)
}
