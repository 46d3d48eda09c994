// Package service resolves the site context (home, current, error page)
package service

import (
	"context"

	"sitegate/internal/platform/logger"
	content "sitegate/internal/services/content/domain"
	domains "sitegate/internal/services/domains/domain"
)

// Service implements domain.ResolverPort
type Service struct {
	reader  content.ReaderPort
	locator content.LocatorPort
	table   domains.TablePort
	log     logger.Logger
}

// New constructs a site context resolver
func New(
	reader content.ReaderPort,
	locator content.LocatorPort,
	table domains.TablePort,
	log logger.Logger,
) *Service {
	return &Service{reader: reader, locator: locator, table: table, log: log}
}

// ResolveHome implements domain.ResolverPort
func (s *Service) ResolveHome(ctx context.Context, assignedContentID int) (content.Node, bool) {
	if assignedContentID != 0 {
		node, ok, err := s.reader.NodeByID(ctx, assignedContentID)
		if err != nil {
			s.log.Warn().Err(err).Int("content_id", assignedContentID).Msg("home lookup failed")
			return content.Node{}, false
		}
		if ok {
			return node, true
		}
		// assigned id points nowhere, fall through to the table scan
	}

	for _, d := range s.table.All(ctx) {
		node, ok, err := s.reader.NodeByID(ctx, d.ContentID)
		if err != nil {
			s.log.Warn().Err(err).Str("domain", d.Name).Int("content_id", d.ContentID).
				Msg("home scan lookup failed")
			return content.Node{}, false
		}
		if ok {
			return node, true
		}
	}
	return content.Node{}, false
}

// ResolveCurrent implements domain.ResolverPort
func (s *Service) ResolveCurrent(
	ctx context.Context,
	matchedNodeID int,
	home content.Node,
) (content.Node, bool) {
	if matchedNodeID != 0 {
		node, ok, err := s.reader.NodeByID(ctx, matchedNodeID)
		if err != nil {
			s.log.Warn().Err(err).Int("node_id", matchedNodeID).Msg("current lookup failed")
			return content.Node{}, false
		}
		if ok {
			return node, true
		}
	}
	if home.ID != 0 {
		return home, true
	}
	return content.Node{}, false
}

// ResolveErrorPage implements domain.ResolverPort
func (s *Service) ResolveErrorPage(ctx context.Context, home content.Node) (content.Node, bool) {
	if home.ID == 0 {
		return content.Node{}, false
	}

	if home.NotFoundID != 0 {
		node, ok, err := s.reader.NodeByID(ctx, home.NotFoundID)
		if err != nil {
			s.log.Warn().Err(err).Int("node_id", home.NotFoundID).Msg("not-found target lookup failed")
			return content.Node{}, false
		}
		if ok {
			return node, true
		}
	}

	folder, ok, err := s.locator.FindAncestorByType(ctx, home, content.AliasFolderSites)
	if err != nil || !ok {
		if err != nil {
			s.log.Warn().Err(err).Int("home_id", home.ID).Msg("site folder lookup failed")
		}
		return content.Node{}, false
	}

	page, ok, err := s.reader.FirstChildByType(ctx, folder, content.AliasPageError)
	if err != nil {
		s.log.Warn().Err(err).Int("folder_id", folder.ID).Msg("error page lookup failed")
		return content.Node{}, false
	}
	return page, ok
}
