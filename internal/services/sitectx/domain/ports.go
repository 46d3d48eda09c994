// Package domain defines the interfaces for site context resolution
package domain

import (
	"context"

	content "sitegate/internal/services/content/domain"
)

// ResolverPort determines the home, current and error-page nodes for a request
// store failures never escape this boundary: every method degrades to a miss
// and logs the cause; only structural tree corruption is allowed to be fatal
// elsewhere (the locator's global root lookup)
type ResolverPort interface {
	// ResolveHome fetches the assigned domain's node directly when
	// assignedContentID is non-zero, otherwise scans the domain table in
	// order and returns the first entry whose content id resolves
	ResolveHome(ctx context.Context, assignedContentID int) (content.Node, bool)

	// ResolveCurrent prefers the router-matched node, falling back to home
	ResolveCurrent(ctx context.Context, matchedNodeID int, home content.Node) (content.Node, bool)

	// ResolveErrorPage prefers the home node's configured not-found target,
	// else the first error-page child of the site folder; a miss is not a fault
	ResolveErrorPage(ctx context.Context, home content.Node) (content.Node, bool)
}
