// Package repo provides the content node repository implementation
package repo

import (
	"context"
	"errors"

	"sitegate/internal/modkit/repokit"
	"sitegate/internal/services/content/domain"

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

// Storage defines the content node repository
type Storage interface {
	NodeByID(ctx context.Context, id int) (domain.Node, bool, error)
	FirstChildByType(ctx context.Context, parent domain.Node, typeAlias string) (domain.Node, bool, error)
}

const nodeColumns = `id, type_alias, ancestor_path, COALESCE(not_found_id, 0)`

// NodeByID implements Storage
func (s *pg) NodeByID(ctx context.Context, id int) (domain.Node, bool, error) {
	row := s.q.QueryRow(ctx, `
		SELECT `+nodeColumns+`
		FROM content_nodes
		WHERE id = $1`, id)

	var n domain.Node
	if err := row.Scan(&n.ID, &n.TypeAlias, &n.AncestorPath, &n.NotFoundID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Node{}, false, nil
		}
		return domain.Node{}, false, err
	}
	return n, true, nil
}

// FirstChildByType implements Storage
// a direct child's ancestor path is the parent's path plus its own id
func (s *pg) FirstChildByType(
	ctx context.Context,
	parent domain.Node,
	typeAlias string,
) (domain.Node, bool, error) {
	rows, err := s.q.Query(ctx, `
		SELECT `+nodeColumns+`
		FROM content_nodes
		WHERE type_alias = $1
			AND ancestor_path = $2 || ',' || id::text
		ORDER BY id
		LIMIT 1`, typeAlias, parent.AncestorPath)
	if err != nil {
		return domain.Node{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return domain.Node{}, false, rows.Err()
	}
	var n domain.Node
	if err := rows.Scan(&n.ID, &n.TypeAlias, &n.AncestorPath, &n.NotFoundID); err != nil {
		return domain.Node{}, false, err
	}
	return n, true, rows.Err()
}
