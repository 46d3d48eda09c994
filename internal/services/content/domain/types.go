// Package domain defines the types and interfaces for the content service
package domain

import "strings"

// Well-known content type aliases in the deployed tree
const (
	// AliasGlobalRoot marks the single root of the whole content tree
	AliasGlobalRoot = "globalRoot"

	// AliasFolderSites marks the folder grouping the per-site home nodes
	AliasFolderSites = "globalFolderSites"

	// AliasPageError marks a site's generic error page
	AliasPageError = "globalPageError"
)

// Node is a read-only projection of a content node from the external store
// AncestorPath is the serialized root-to-self id list, eg "-1,1059,1075,1090"
type Node struct {
	ID           int
	TypeAlias    string
	AncestorPath string

	// NotFoundID is the configured not-found target on home nodes, 0 when unset
	NotFoundID int
}

// Is reports whether the node carries the given type alias
// alias comparison is case-insensitive to match the store's convention
func (n Node) Is(alias string) bool { return strings.EqualFold(n.TypeAlias, alias) }
