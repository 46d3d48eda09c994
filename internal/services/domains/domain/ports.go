package domain

import "context"

// ProviderPort is the external store surface the cache refreshes from
type ProviderPort interface {
	// AllDomains returns the full domain table in table order
	AllDomains(ctx context.Context) ([]SiteDomain, error)

	// AssignedDomain returns the domain assigned to a content id
	AssignedDomain(ctx context.Context, contentID int) (SiteDomain, bool, error)
}

// TablePort is the read surface the negotiator and resolvers consume
// implementations never propagate store failures: All degrades to the prior
// snapshot (or empty) and Assigned degrades to a soft miss
type TablePort interface {
	// All returns the cached domain table, refreshing it when the TTL lapsed
	All(ctx context.Context) []SiteDomain

	// Assigned bypasses the cache and looks up by content id
	Assigned(ctx context.Context, contentID int) (SiteDomain, bool)
}
