package domain

import "context"

// ReaderPort reads content nodes by id from the external store
type ReaderPort interface {
	// NodeByID returns the node and true, or false when no such node exists
	NodeByID(ctx context.Context, id int) (Node, bool, error)

	// FirstChildByType returns the first direct child of parent carrying the
	// given type alias, ordered by id
	FirstChildByType(ctx context.Context, parent Node, typeAlias string) (Node, bool, error)
}

// LocatorPort walks a node's ancestor path looking for a type alias
type LocatorPort interface {
	// FindAncestorByType checks start itself first, then walks the parsed
	// ancestor path outermost-in, fetching each candidate at most once
	// the boolean result is false when the path is exhausted without a match
	FindAncestorByType(ctx context.Context, start Node, typeAlias string) (Node, bool, error)

	// GlobalRoot resolves the tree root for start; a missing root is fatal
	// because it means the deployed content tree is corrupt
	GlobalRoot(ctx context.Context, start Node) (Node, error)
}
