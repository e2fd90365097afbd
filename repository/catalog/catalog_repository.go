package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/model"
)

type SQL struct {
	conn *sqlx.DB
}

// CatalogRepository resolves an external product reference to the internal item.
type CatalogRepository interface {
	ResolveItem(ctx context.Context, tenantID uint64, productRef string) (*model.CatalogItem, error)
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

const resolveItemQuery = `SELECT p.id, p.tenant_id, p.product_ref, p.name, p.price
FROM product p
WHERE p.tenant_id = ? AND p.product_ref = ?`

// ResolveItem returns nil, nil when the reference is unknown.
func (s *SQL) ResolveItem(ctx context.Context, tenantID uint64, productRef string) (*model.CatalogItem, error) {
	var item model.CatalogItem
	err := s.conn.QueryRowxContext(ctx, resolveItemQuery, tenantID, productRef).StructScan(&item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve item %q: %w", productRef, err)
	}
	return &item, nil
}
