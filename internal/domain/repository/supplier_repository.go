package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// SupplierRepository define el puerto de proveedores. El motor de alertas
// solo lee; el CRUD vive en la capa de administración.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Supplier, error)
	AddProduct(ctx context.Context, sp *entity.SupplierProduct) error
	// GetCheapestByProduct devuelve el proveedor con menor precio de compra
	// para el producto, o nil si ninguno lo suministra.
	GetCheapestByProduct(ctx context.Context, productID string) (*entity.Supplier, error)
}
