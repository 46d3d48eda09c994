// Package service provides the TTL snapshot cache over the domain table
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"sitegate/internal/modkit/repokit"
	"sitegate/internal/platform/logger"
	dom "sitegate/internal/services/domains/domain"
	"sitegate/internal/services/domains/repo"

	"github.com/go-playground/validator/v10"
)

// Config for the domains cache
type Config struct {
	// TTL bounds snapshot staleness, default 60s
	TTL time.Duration

	// Now is the clock seam, defaults to time.Now
	Now func() time.Time
}

// snapshot is an immutable domain table plus its fetch time
// replaced wholesale so readers never observe a partial table
type snapshot struct {
	domains   []dom.SiteDomain
	fetchedAt time.Time
}

// Cache implements domain.TablePort and domain.ProviderPort passthrough
// readers load the current snapshot without locking; the mutex only guards
// the swap, racing refreshes are tolerated and the last writer wins
type Cache struct {
	provider dom.ProviderPort
	cfg      Config
	log      logger.Logger
	validate *validator.Validate

	mu   sync.Mutex
	snap atomic.Pointer[snapshot]
}

// New constructs a domains cache over the provider
func New(provider dom.ProviderPort, cfg Config, log logger.Logger) *Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = 60 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Cache{
		provider: provider,
		cfg:      cfg,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// rowCheck validates one domain table entry on refresh
type rowCheck struct {
	Name    string `validate:"required"`
	Culture string `validate:"omitempty,bcp47_language_tag"`
}

// All implements domain.TablePort
// within the TTL every caller sees the identical snapshot; after expiry the
// next caller refreshes; a failed refresh keeps serving the prior snapshot
func (c *Cache) All(ctx context.Context) []dom.SiteDomain {
	now := c.cfg.Now()

	if s := c.snap.Load(); s != nil && len(s.domains) > 0 && now.Before(s.fetchedAt.Add(c.cfg.TTL)) {
		return s.domains
	}

	fresh, err := c.provider.AllDomains(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("domain table refresh failed, serving prior snapshot")
		if s := c.snap.Load(); s != nil {
			return s.domains
		}
		return nil
	}

	kept := make([]dom.SiteDomain, 0, len(fresh))
	for _, d := range fresh {
		if err := c.validate.Struct(rowCheck{Name: d.Name, Culture: d.Culture}); err != nil {
			c.log.Warn().Err(err).Str("name", d.Name).Str("culture", d.Culture).
				Msg("skipping malformed domain table entry")
			continue
		}
		kept = append(kept, d)
	}

	next := &snapshot{domains: kept, fetchedAt: now}
	c.mu.Lock()
	c.snap.Store(next)
	c.mu.Unlock()
	return next.domains
}

// Assigned implements domain.TablePort
// bypasses the snapshot; store failures degrade to a soft miss
func (c *Cache) Assigned(ctx context.Context, contentID int) (dom.SiteDomain, bool) {
	d, ok, err := c.provider.AssignedDomain(ctx, contentID)
	if err != nil {
		c.log.Warn().Err(err).Int("content_id", contentID).Msg("assigned domain lookup failed")
		return dom.SiteDomain{}, false
	}
	return d, ok
}

// pgProvider adapts the pg repo to domain.ProviderPort
type pgProvider struct {
	runner repokit.TxRunner
	binder repokit.Binder[repo.Storage]
}

// NewPGProvider builds a provider over the bound pg repo
func NewPGProvider(runner repokit.TxRunner, binder repokit.Binder[repo.Storage]) dom.ProviderPort {
	return &pgProvider{runner: runner, binder: binder}
}

func (p *pgProvider) AllDomains(ctx context.Context) ([]dom.SiteDomain, error) {
	return p.binder.Bind(p.runner).AllDomains(ctx)
}

func (p *pgProvider) AssignedDomain(ctx context.Context, contentID int) (dom.SiteDomain, bool, error) {
	return p.binder.Bind(p.runner).AssignedDomain(ctx, contentID)
}
