// Package http provides the resolve API transport
package http

import (
	stdctx "context"
	stdhttp "net/http"

	"github.com/google/uuid"

	"sitegate/internal/modkit/httpkit"
	perr "sitegate/internal/platform/errors"
	"sitegate/internal/platform/net/http/bind"
	domainsdom "sitegate/internal/services/domains/domain"
	"sitegate/internal/services/edge/resolve/domain"
	localedom "sitegate/internal/services/locale/domain"
	sitectxdom "sitegate/internal/services/sitectx/domain"
)

// Ports are the cross-module ports the handlers consume
type Ports struct {
	Negotiator localedom.NegotiatorPort
	Table      domainsdom.TablePort
	Resolver   sitectxdom.ResolverPort
}

type handlers struct{ ports Ports }

// Register mounts the resolve endpoints
func Register(r httpkit.Router, p Ports) {
	h := &handlers{ports: p}

	httpkit.Get(r, "/resolve", h.resolve)
	httpkit.Get(r, "/resolve/url", h.url)
	httpkit.Post(r, "/resolve/preview", h.preview)
	httpkit.Get(r, "/domains", h.domains)
}

// swagger:route GET /resolve Resolve resolveDryRun
// @Summary Dry-run site and culture resolution for a host and path
// @Tags Resolve
// @Produce json
// @Param host query string true "request host"
// @Param path query string false "request path, defaults to /"
// @Param query query string false "raw query string"
// @Param cookie query string false "culture cookie value"
// @Success 200 type Resolution "ok"
// @Router /resolve [get]
func (h *handlers) resolve(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	host := q.Get("host")
	if host == "" {
		return nil, perr.InvalidArgf("host is required")
	}

	req := localedom.Request{
		Host:          host,
		Path:          pathOrRoot(q.Get("path")),
		RawQuery:      q.Get("query"),
		IsHTTPS:       q.Get("https") == "true",
		CookieCulture: q.Get("cookie"),
	}
	return h.resolution(r.Context(), req, ""), nil
}

// swagger:route POST /resolve/preview Resolve resolvePreview
// @Summary Dry-run resolution from a JSON request description
// @Tags Resolve
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "request description"
// @Success 200 type Resolution "ok"
// @Router /resolve/preview [post]
func (h *handlers) preview(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.PreviewInput](r)
	if err != nil {
		return nil, err
	}

	req := localedom.Request{
		Host:          in.Host,
		Path:          pathOrRoot(in.Path),
		RawQuery:      in.Query,
		IsHTTPS:       in.HTTPS,
		CookieCulture: in.CookieCulture,
	}
	return h.resolution(r.Context(), req, uuid.NewString()), nil
}

// swagger:route GET /domains Resolve resolveDomains
// @Summary Current domain table snapshot
// @Tags Resolve
// @Produce json
// @Param all query bool false "include entries without a culture"
// @Success 200 type DomainsResponse "ok"
// @Router /domains [get]
func (h *handlers) domains(r *stdhttp.Request) (any, error) {
	all := r.URL.Query().Get("all") == "true"

	out := domain.DomainsResponse{Domains: []domain.DomainEntry{}}
	for _, d := range h.ports.Table.All(r.Context()) {
		if !all && d.Culture == "" {
			continue
		}
		out.Domains = append(out.Domains, domain.DomainEntry{
			Name:      d.Name,
			Culture:   d.Culture,
			ContentID: d.ContentID,
		})
	}
	return out, nil
}

// swagger:route GET /resolve/url Resolve resolveURL
// @Summary Prefix a content path with its culture segment
// @Tags Resolve
// @Produce json
// @Param path query string false "content path, defaults to /"
// @Param culture query string true "target culture"
// @Success 200 type URLResponse "ok"
// @Router /resolve/url [get]
func (h *handlers) url(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	culture := q.Get("culture")
	if culture == "" {
		return nil, perr.InvalidArgf("culture is required")
	}
	u := h.ports.Negotiator.URLWithCulture(r.Context(), pathOrRoot(q.Get("path")), culture)
	return domain.URLResponse{URL: u}, nil
}

func (h *handlers) resolution(
	ctx stdctx.Context,
	req localedom.Request,
	correlationID string,
) domain.Resolution {
	res := h.ports.Negotiator.ResolveForRequest(ctx, req)

	out := domain.Resolution{
		CorrelationID:  correlationID,
		Outcome:        res.Outcome.String(),
		Culture:        res.Culture,
		RedirectTarget: res.RedirectTarget,
	}
	if res.Domain.Name != "" {
		out.Domain = &domain.DomainEntry{
			Name:      res.Domain.Name,
			Culture:   res.Domain.Culture,
			ContentID: res.Domain.ContentID,
		}
		if home, ok := h.ports.Resolver.ResolveHome(ctx, res.Domain.ContentID); ok {
			out.HomeNodeID = home.ID
			if page, ok := h.ports.Resolver.ResolveErrorPage(ctx, home); ok {
				out.ErrorPageID = page.ID
			}
		}
	}
	return out
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
