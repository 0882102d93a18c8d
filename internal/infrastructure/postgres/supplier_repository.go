package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, company_id, name, contact, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.CompanyID, supplier.Name, supplier.Contact, supplier.CreatedAt,
	)
	if err != nil {
		return domain.NewStorageError("insert supplier", err)
	}
	return nil
}

// ListByCompany lista proveedores de una empresa.
func (r *SupplierRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, contact, created_at
		FROM suppliers WHERE company_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, domain.NewStorageError("list suppliers", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Contact, &s.CreatedAt); err != nil {
			return nil, domain.NewStorageError("scan supplier", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// AddProduct asocia proveedor ↔ producto con precio y lead time.
func (r *SupplierRepo) AddProduct(ctx context.Context, sp *entity.SupplierProduct) error {
	query := `
		INSERT INTO supplier_products (supplier_id, product_id, price, lead_time_days)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (supplier_id, product_id)
		DO UPDATE SET price = EXCLUDED.price, lead_time_days = EXCLUDED.lead_time_days`
	_, err := r.q.Exec(ctx, query, sp.SupplierID, sp.ProductID, sp.Price, sp.LeadTimeDays)
	if err != nil {
		return domain.NewStorageError("upsert supplier product", err)
	}
	return nil
}

// GetCheapestByProduct devuelve el proveedor con menor precio de compra para
// el producto (desempate por lead time), o nil si ninguno lo suministra.
func (r *SupplierRepo) GetCheapestByProduct(ctx context.Context, productID string) (*entity.Supplier, error) {
	query := `
		SELECT s.id, s.company_id, s.name, s.contact, s.created_at
		FROM suppliers s
		JOIN supplier_products sp ON sp.supplier_id = s.id
		WHERE sp.product_id = $1
		ORDER BY sp.price ASC, sp.lead_time_days ASC
		LIMIT 1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Contact, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get cheapest supplier", err)
	}
	return &s, nil
}
