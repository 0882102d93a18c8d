package postgres

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.BundleComponentRepository = (*BundleComponentRepo)(nil)

// BundleComponentRepo implementación sobre PostgreSQL del grafo de
// composición de bundles.
type BundleComponentRepo struct {
	q Querier
}

// NewBundleComponentRepository construye el adaptador.
func NewBundleComponentRepository(q Querier) *BundleComponentRepo {
	return &BundleComponentRepo{q: q}
}

// Add agrega un componente a un bundle (la prevención de ciclos vive en el
// caso de uso, antes de llegar aquí).
func (r *BundleComponentRepo) Add(ctx context.Context, component *entity.BundleComponent) error {
	query := `
		INSERT INTO product_components (bundle_id, component_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (bundle_id, component_id)
		DO UPDATE SET quantity = EXCLUDED.quantity`
	_, err := r.q.Exec(ctx, query, component.BundleID, component.ComponentID, component.Quantity)
	if err != nil {
		return domain.NewStorageError("upsert bundle component", err)
	}
	return nil
}

// ListComponents devuelve los componentes directos de un bundle.
func (r *BundleComponentRepo) ListComponents(ctx context.Context, bundleID string) ([]*entity.BundleComponent, error) {
	query := `
		SELECT bundle_id, component_id, quantity
		FROM product_components WHERE bundle_id = $1`
	rows, err := r.q.Query(ctx, query, bundleID)
	if err != nil {
		return nil, domain.NewStorageError("list bundle components", err)
	}
	defer rows.Close()
	var list []*entity.BundleComponent
	for rows.Next() {
		var c entity.BundleComponent
		if err := rows.Scan(&c.BundleID, &c.ComponentID, &c.Quantity); err != nil {
			return nil, domain.NewStorageError("scan bundle component", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
