// Package service implements the locale negotiator
package service

import (
	"context"
	"strings"

	"golang.org/x/text/language"

	"sitegate/internal/platform/logger"
	domains "sitegate/internal/services/domains/domain"
	"sitegate/internal/services/locale/domain"
)

// Config carries the negotiation settings resolved at startup
type Config struct {
	// RememberLanguage is the master toggle; when false every pass is NoAction
	RememberLanguage bool

	// BackofficeEnabled excludes the BackofficeHosts from negotiation
	BackofficeEnabled bool
	BackofficeHosts   []string

	// ExcludePathsEnabled adds ExcludePaths to the exclusion set
	ExcludePathsEnabled bool
	ExcludePaths        []string

	// AssetRoot is the public asset directory whose top-level entries extend
	// the exclusion set, "" to skip the listing
	AssetRoot string

	// DefaultCulture applies when neither path, cookie nor a path-less
	// domain entry yields a culture
	DefaultCulture string
}

// Service implements domain.NegotiatorPort
type Service struct {
	table   domains.TablePort
	cfg     Config
	log     logger.Logger
	exclude *exclusionSet
}

// New constructs the negotiator
func New(table domains.TablePort, cfg Config, log logger.Logger) *Service {
	return &Service{
		table:   table,
		cfg:     cfg,
		log:     log,
		exclude: newExclusionSet(cfg, log),
	}
}

// ResolveForRequest implements domain.NegotiatorPort.
// One pass: exclusion, culture discovery (path segment, then cookie, then
// default), canonical domain lookup, redirect decision
func (s *Service) ResolveForRequest(ctx context.Context, req domain.Request) domain.Resolution {
	if !s.cfg.RememberLanguage || s.excluded(req) {
		return domain.Resolution{Outcome: domain.OutcomeNoAction}
	}

	table := s.table.All(ctx)
	segs := pathSegments(req.Path)

	var matched domains.SiteDomain
	culture := ""
	isRedirect := true

	if len(segs) > 0 {
		// the URL already carries a site/culture marker when a domain name
		// contains the first segment; first table entry wins
		for _, d := range table {
			if containsFold(d.Name, segs[0]) {
				matched, culture, isRedirect = d, d.Culture, false
				break
			}
		}
	} else if req.CookieCulture != "" {
		if tag, err := language.Parse(req.CookieCulture); err == nil {
			culture = tag.String()
		} else {
			s.log.Warn().Str("cookie_culture", req.CookieCulture).
				Msg("unparseable culture cookie, ignoring")
		}
	}

	if culture == "" {
		culture = defaultCulture(table, s.cfg.DefaultCulture)
	}
	if culture == "" {
		return domain.Resolution{Outcome: domain.OutcomeNoAction}
	}

	if matched.Name == "" {
		for _, d := range table {
			if d.Culture != "" && strings.EqualFold(d.Culture, culture) {
				matched = d
				break
			}
		}
		// a culture-only match pointing at a foreign host must not bounce the
		// client across independently deployed hosts
		if matched.Name != "" && !strings.EqualFold(hostOf(matched.Name), req.Host) {
			isRedirect = false
		}
	}

	res := domain.Resolution{
		Outcome: domain.OutcomeSetCultureOnly,
		Culture: culture,
		Domain:  matched,
	}
	if isRedirect && matched.Name != "" {
		if target := s.BuildRedirect(ctx, matched.Name, req); target != "" {
			res.Outcome = domain.OutcomeSetCultureAndRedirect
			res.RedirectTarget = target
		}
	}
	return res
}

// excluded reports whether the request opts out of negotiation entirely
func (s *Service) excluded(req domain.Request) bool {
	if s.cfg.BackofficeEnabled {
		for _, h := range s.cfg.BackofficeHosts {
			if strings.EqualFold(hostOf(h), req.Host) {
				return true
			}
		}
	}
	segs := pathSegments(req.Path)
	return len(segs) > 0 && s.exclude.has(segs[0])
}

// defaultCulture prefers the path-less "default" entry (name ending in "/"),
// else the configured fallback
func defaultCulture(table []domains.SiteDomain, fallback string) string {
	for _, d := range table {
		if strings.HasSuffix(d.Name, "/") && d.Culture != "" {
			return d.Culture
		}
	}
	return fallback
}

func pathSegments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
