package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo agregador de ventas sobre el ledger. Las ventas son asientos con
// razón "sale" y cambio negativo; las unidades vendidas son -change_amount.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de ventas.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// TrailingSales suma las unidades vendidas del producto en todas las bodegas
// dentro del intervalo semiabierto [from, to).
func (r *SalesRepo) TrailingSales(ctx context.Context, productID string, from, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(-change_amount), 0)
		FROM inventory_history
		WHERE product_id = $1
		  AND reason     = $2
		  AND created_at >= $3
		  AND created_at <  $4`
	var units int64
	err := r.q.QueryRow(ctx, query, productID, entity.ReasonSale, from, to).Scan(&units)
	if err != nil {
		return 0, domain.NewStorageError("trailing sales", err)
	}
	return units, nil
}
