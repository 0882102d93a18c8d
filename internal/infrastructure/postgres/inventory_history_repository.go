package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo adaptador del ledger append-only sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: los asientos jamás se
// actualizan ni se borran.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Append persiste un asiento del ledger.
func (r *InventoryHistoryRepo) Append(ctx context.Context, entry *entity.InventoryHistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_history (id, product_id, warehouse_id, change_amount, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.WarehouseID,
		entry.ChangeAmount, entry.Reason, entry.CreatedAt,
	)
	if err != nil {
		return domain.NewStorageError("append history entry", err)
	}
	return nil
}

// ListByPair lista los asientos de un par (producto, bodega) en un rango de
// fechas opcional, más reciente primero.
func (r *InventoryHistoryRepo) ListByPair(ctx context.Context, productID, warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryHistoryEntry, error) {
	query := `
		SELECT id, product_id, warehouse_id, change_amount, reason, created_at
		FROM inventory_history WHERE product_id = $1 AND warehouse_id = $2`
	args := []any{productID, warehouseID}
	pos := 3
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at < $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStorageError("list history by pair", err)
	}
	defer rows.Close()
	var list []*entity.InventoryHistoryEntry
	for rows.Next() {
		var e entity.InventoryHistoryEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.WarehouseID,
			&e.ChangeAmount, &e.Reason, &e.CreatedAt); err != nil {
			return nil, domain.NewStorageError("scan history entry", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SumByPair suma ChangeAmount de todos los asientos del par; debe igualar
// la cantidad materializada en stock.
func (r *InventoryHistoryRepo) SumByPair(ctx context.Context, productID, warehouseID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(change_amount), 0)
		FROM inventory_history
		WHERE product_id = $1 AND warehouse_id = $2`
	var sum int64
	if err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(&sum); err != nil {
		return 0, domain.NewStorageError("sum history by pair", err)
	}
	return sum, nil
}
