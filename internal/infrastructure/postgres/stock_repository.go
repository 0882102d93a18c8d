package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una bodega. Fila ausente se
// devuelve como cantidad 0.
func (r *StockRepo) Get(ctx context.Context, productID, warehouseID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, domain.NewStorageError("get stock", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE) para
// serializar ajustes concurrentes sobre el mismo par. Un par sin fila no
// tiene nada que bloquear, así que primero se materializa en 0: dos primeros
// ajustes concurrentes quedan serializados por la fila recién insertada en
// lugar de leer ambos cantidad 0 y pisarse. Si la transacción termina en
// rollback, la fila materializada desaparece con ella.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.Stock, error) {
	insert := `
		INSERT INTO stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (product_id, warehouse_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, insert, productID, warehouseID); err != nil {
		return nil, domain.NewStorageError("init stock row", err)
	}
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		return nil, domain.NewStorageError("get stock for update", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y bodega).
// El CHECK quantity >= 0 de la tabla respalda la validación de aplicación.
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, stock.ProductID, stock.WarehouseID, stock.Quantity, stock.UpdatedAt)
	if err != nil {
		return domain.NewStorageError("upsert stock", err)
	}
	return nil
}

// ListByWarehouse lista el stock de una bodega.
func (r *StockRepo) ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE warehouse_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, warehouseID, limit, offset)
	if err != nil {
		return nil, domain.NewStorageError("list stock by warehouse", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, domain.NewStorageError("scan stock", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListAlertCandidates devuelve los pares (producto, bodega) de la empresa
// con umbral definido y su cantidad actual. Excluye bundles (fuera del
// alertado hasta que se defina su política) y productos sin umbral.
func (r *StockRepo) ListAlertCandidates(ctx context.Context, companyID string) ([]repository.AlertCandidate, error) {
	query := `
		SELECT
		    p.id,
		    p.name,
		    p.sku,
		    w.id,
		    w.name,
		    s.quantity,
		    p.low_stock_threshold
		FROM stock s
		JOIN products   p ON p.id = s.product_id
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE p.company_id = $1
		  AND p.low_stock_threshold IS NOT NULL
		  AND p.is_bundle = FALSE
		ORDER BY p.id, w.id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, domain.NewStorageError("list alert candidates", err)
	}
	defer rows.Close()
	var items []repository.AlertCandidate
	for rows.Next() {
		var c repository.AlertCandidate
		if err := rows.Scan(&c.ProductID, &c.ProductName, &c.SKU,
			&c.WarehouseID, &c.WarehouseName, &c.Quantity, &c.Threshold); err != nil {
			return nil, domain.NewStorageError("scan alert candidate", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
