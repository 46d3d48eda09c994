package service

import (
	"context"
	"reflect"
	"testing"

	"sitegate/internal/platform/logger"
	dom "sitegate/internal/services/domains/domain"
	"sitegate/internal/services/locale/domain"
)

type fakeTable struct{ domains []dom.SiteDomain }

func (f *fakeTable) All(context.Context) []dom.SiteDomain { return f.domains }
func (f *fakeTable) Assigned(context.Context, int) (dom.SiteDomain, bool) {
	return dom.SiteDomain{}, false
}

func twoCultureTable() *fakeTable {
	return &fakeTable{domains: []dom.SiteDomain{
		{Name: "example.com", Culture: "en-US", ContentID: 100},
		{Name: "example.com/fr", Culture: "fr-FR", ContentID: 100},
	}}
}

func newNegotiator(t *fakeTable, cfg Config) *Service {
	cfg.RememberLanguage = true
	return New(t, cfg, logger.Logger{})
}

func TestResolve_PathCarriesCultureSegment(t *testing.T) {
	t.Parallel()

	svc := newNegotiator(twoCultureTable(), Config{DefaultCulture: "en-US"})

	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "example.com", Path: "/fr/about",
	})
	if res.Outcome != domain.OutcomeSetCultureOnly {
		t.Fatalf("outcome = %v, want set_culture", res.Outcome)
	}
	if res.Culture != "fr-FR" {
		t.Fatalf("culture = %q, want fr-FR", res.Culture)
	}
	if res.RedirectTarget != "" {
		t.Fatalf("unexpected redirect target %q", res.RedirectTarget)
	}
}

func TestResolve_DefaultCultureRedirects(t *testing.T) {
	t.Parallel()

	svc := newNegotiator(twoCultureTable(), Config{DefaultCulture: "en-US"})

	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "example.com", Path: "/about",
	})
	if res.Outcome != domain.OutcomeSetCultureAndRedirect {
		t.Fatalf("outcome = %v, want set_culture_and_redirect", res.Outcome)
	}
	if res.Culture != "en-US" {
		t.Fatalf("culture = %q, want en-US", res.Culture)
	}
	if res.RedirectTarget != "https://example.com/about" {
		t.Fatalf("redirect target = %q", res.RedirectTarget)
	}
}

func TestResolve_BackofficeHostIsNoAction(t *testing.T) {
	t.Parallel()

	svc := newNegotiator(twoCultureTable(), Config{
		DefaultCulture:    "en-US",
		BackofficeEnabled: true,
		BackofficeHosts:   []string{"https://Admin.Example.com"},
	})

	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "admin.example.com", Path: "/fr/about",
	})
	if res.Outcome != domain.OutcomeNoAction {
		t.Fatalf("outcome = %v, want no_action", res.Outcome)
	}
	if res.Culture != "" || res.RedirectTarget != "" {
		t.Fatalf("no_action must carry nothing, got %+v", res)
	}
}

func TestResolve_WellKnownPathsNeverNegotiate(t *testing.T) {
	t.Parallel()

	svc := newNegotiator(twoCultureTable(), Config{DefaultCulture: "en-US"})

	for _, p := range []string{"/robots.txt", "/Robots.TXT", "/favicon.ico", "/sitemap.xml", "/error"} {
		res := svc.ResolveForRequest(context.Background(), domain.Request{
			Host: "example.com", Path: p,
		})
		if res.Outcome != domain.OutcomeNoAction {
			t.Fatalf("path %q: outcome = %v, want no_action", p, res.Outcome)
		}
	}
}

func TestResolve_MasterToggleOff(t *testing.T) {
	t.Parallel()

	svc := New(twoCultureTable(), Config{DefaultCulture: "en-US"}, logger.Logger{})

	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "example.com", Path: "/about",
	})
	if res.Outcome != domain.OutcomeNoAction {
		t.Fatalf("outcome = %v, want no_action when remember-language is off", res.Outcome)
	}
}

func TestResolve_CookieOnRootPath(t *testing.T) {
	t.Parallel()

	svc := newNegotiator(twoCultureTable(), Config{DefaultCulture: "en-US"})

	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "example.com", Path: "/", CookieCulture: "fr-FR",
	})
	if res.Culture != "fr-FR" {
		t.Fatalf("culture = %q, want fr-FR from cookie", res.Culture)
	}
	if res.Outcome != domain.OutcomeSetCultureAndRedirect {
		t.Fatalf("outcome = %v, want redirect to the culture domain", res.Outcome)
	}
	if res.RedirectTarget != "https://example.com/fr/" {
		t.Fatalf("redirect target = %q", res.RedirectTarget)
	}
}

func TestResolve_CookieIgnoredOnDeepPath(t *testing.T) {
	t.Parallel()

	svc := newNegotiator(twoCultureTable(), Config{DefaultCulture: "en-US"})

	// a deep path without a matching segment falls to the default culture,
	// the cookie only matters on the root path
	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "example.com", Path: "/about", CookieCulture: "fr-FR",
	})
	if res.Culture != "en-US" {
		t.Fatalf("culture = %q, want en-US", res.Culture)
	}
}

func TestResolve_UnparseableCookieSkipped(t *testing.T) {
	t.Parallel()

	svc := newNegotiator(twoCultureTable(), Config{DefaultCulture: "en-US"})

	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "example.com", Path: "/", CookieCulture: "!!not-a-culture",
	})
	if res.Culture != "en-US" {
		t.Fatalf("culture = %q, want default en-US past the bad cookie", res.Culture)
	}
}

func TestResolve_PathlessEntryWinsAsDefault(t *testing.T) {
	t.Parallel()

	table := &fakeTable{domains: []dom.SiteDomain{
		{Name: "example.com/fr", Culture: "fr-FR", ContentID: 100},
		{Name: "example.com/", Culture: "de-DE", ContentID: 100},
	}}
	svc := newNegotiator(table, Config{DefaultCulture: "en-US"})

	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "example.com", Path: "/",
	})
	if res.Culture != "de-DE" {
		t.Fatalf("culture = %q, want de-DE from the path-less entry", res.Culture)
	}
}

func TestResolve_CultureOnlyMatchToForeignHost_NoRedirect(t *testing.T) {
	t.Parallel()

	table := &fakeTable{domains: []dom.SiteDomain{
		{Name: "other.org", Culture: "fr-FR", ContentID: 7},
	}}
	svc := newNegotiator(table, Config{})

	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "example.com", Path: "/", CookieCulture: "fr-FR",
	})
	if res.Outcome != domain.OutcomeSetCultureOnly {
		t.Fatalf("outcome = %v, want set_culture without a cross-host bounce", res.Outcome)
	}
	if res.Domain.Name != "other.org" {
		t.Fatalf("matched domain = %q", res.Domain.Name)
	}
}

func TestResolve_NoCultureAnywhere_NoAction(t *testing.T) {
	t.Parallel()

	svc := newNegotiator(&fakeTable{}, Config{})

	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "example.com", Path: "/about",
	})
	if res.Outcome != domain.OutcomeNoAction {
		t.Fatalf("outcome = %v, want no_action with nothing to resolve", res.Outcome)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	svc := newNegotiator(twoCultureTable(), Config{DefaultCulture: "en-US"})

	req := domain.Request{Host: "example.com", Path: "/about", RawQuery: "q=1"}
	first := svc.ResolveForRequest(context.Background(), req)
	second := svc.ResolveForRequest(context.Background(), req)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolutions differ:\n%+v\n%+v", first, second)
	}
}

func TestResolve_QueryPreservedOnRedirect(t *testing.T) {
	t.Parallel()

	svc := newNegotiator(twoCultureTable(), Config{DefaultCulture: "en-US"})

	res := svc.ResolveForRequest(context.Background(), domain.Request{
		Host: "example.com", Path: "/about", RawQuery: "page=2&sort=asc",
	})
	if res.RedirectTarget != "https://example.com/about?page=2&sort=asc" {
		t.Fatalf("redirect target = %q", res.RedirectTarget)
	}
}
