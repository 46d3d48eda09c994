// Package repo provides the site domain repository implementation
package repo

import (
	"context"
	"errors"

	"sitegate/internal/modkit/repokit"
	"sitegate/internal/services/domains/domain"

	"github.com/jackc/pgx/v5"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the site domain repository
type Storage interface {
	AllDomains(ctx context.Context) ([]domain.SiteDomain, error)
	AssignedDomain(ctx context.Context, contentID int) (domain.SiteDomain, bool, error)
}

// AllDomains implements Storage
// sort_order keeps the editorial table order; first match wins downstream
func (s *pg) AllDomains(ctx context.Context) ([]domain.SiteDomain, error) {
	rows, err := s.q.Query(ctx, `
		SELECT name, COALESCE(culture, ''), content_id
		FROM site_domains
		ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SiteDomain
	for rows.Next() {
		var d domain.SiteDomain
		if err := rows.Scan(&d.Name, &d.Culture, &d.ContentID); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// AssignedDomain implements Storage
func (s *pg) AssignedDomain(ctx context.Context, contentID int) (domain.SiteDomain, bool, error) {
	row := s.q.QueryRow(ctx, `
		SELECT name, COALESCE(culture, ''), content_id
		FROM site_domains
		WHERE content_id = $1
		ORDER BY sort_order, id
		LIMIT 1`, contentID)

	var d domain.SiteDomain
	if err := row.Scan(&d.Name, &d.Culture, &d.ContentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SiteDomain{}, false, nil
		}
		return domain.SiteDomain{}, false, err
	}
	return d, true, nil
}
