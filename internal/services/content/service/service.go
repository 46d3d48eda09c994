// Package service provides the content reader and the ancestor locator
package service

import (
	"context"

	"sitegate/internal/core/treepath"
	"sitegate/internal/modkit/repokit"
	perr "sitegate/internal/platform/errors"
	dom "sitegate/internal/services/content/domain"
	"sitegate/internal/services/content/repo"
)

// Service implements domain.ReaderPort and domain.LocatorPort over the pg repo
type Service struct {
	runner repokit.TxRunner
	binder repokit.Binder[repo.Storage]
}

// New constructs a content service
func New(runner repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Service {
	return &Service{runner: runner, binder: binder}
}

func (s *Service) storage() repo.Storage { return s.binder.Bind(s.runner) }

// NodeByID implements domain.ReaderPort
func (s *Service) NodeByID(ctx context.Context, id int) (dom.Node, bool, error) {
	if id == 0 {
		return dom.Node{}, false, nil
	}
	n, ok, err := s.storage().NodeByID(ctx, id)
	if err != nil {
		return dom.Node{}, false, perr.FromPostgresf(err, "node %d", id)
	}
	return n, ok, nil
}

// FirstChildByType implements domain.ReaderPort
func (s *Service) FirstChildByType(
	ctx context.Context,
	parent dom.Node,
	typeAlias string,
) (dom.Node, bool, error) {
	n, ok, err := s.storage().FirstChildByType(ctx, parent, typeAlias)
	if err != nil {
		return dom.Node{}, false, perr.FromPostgresf(err, "first child of %d by %q", parent.ID, typeAlias)
	}
	return n, ok, nil
}

// FindAncestorByType implements domain.LocatorPort
//
// The walk is an explicit loop over the pre-parsed path with an index cursor:
// self first (zero fetches), then each ancestor id outermost-in, one fetch per
// candidate, at most len(path) fetches total. Fetched nodes are trusted over
// the caller's copy for every subsequent step
func (s *Service) FindAncestorByType(
	ctx context.Context,
	start dom.Node,
	typeAlias string,
) (dom.Node, bool, error) {
	if start.Is(typeAlias) {
		return start, true, nil
	}

	path, err := treepath.Parse(start.AncestorPath)
	if err != nil {
		return dom.Node{}, false, err
	}
	if path.Empty() {
		return dom.Node{}, false, nil
	}

	seen := map[int]struct{}{start.ID: {}}
	for _, id := range path.Ancestors() {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		node, ok, err := s.NodeByID(ctx, id)
		if err != nil {
			return dom.Node{}, false, err
		}
		if !ok {
			continue
		}
		if node.Is(typeAlias) {
			return node, true, nil
		}
	}
	return dom.Node{}, false, nil
}

// GlobalRoot implements domain.LocatorPort
// absence of the root alias anywhere on the path means the content tree is
// corrupt, so this is the one lookup allowed to fail hard
func (s *Service) GlobalRoot(ctx context.Context, start dom.Node) (dom.Node, error) {
	node, ok, err := s.FindAncestorByType(ctx, start, dom.AliasGlobalRoot)
	if err != nil {
		return dom.Node{}, err
	}
	if !ok {
		return dom.Node{}, perr.Internalf("global root %q not reachable from node %d", dom.AliasGlobalRoot, start.ID)
	}
	return node, nil
}
