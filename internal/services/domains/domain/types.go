// Package domain defines the types and interfaces for the domains service
package domain

// SiteDomain maps a configured host (optionally with a path segment,
// optionally schemeless) to a content node and culture
// a collection of these is the "domain table"; snapshots are immutable
type SiteDomain struct {
	// Name is the configured host, eg "example.com", "example.com/fr",
	// "https://example.com" or the path-less default marker "example.com/"
	Name string

	// Culture is the BCP 47 tag served under this domain, empty when unset
	Culture string

	// ContentID references the site's home node in the content store
	ContentID int
}
