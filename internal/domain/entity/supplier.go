package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor de la empresa. El núcleo de inventario lo
// lee para enriquecer alertas; nunca lo muta.
type Supplier struct {
	ID        string
	CompanyID string
	Name      string
	Contact   string // email o teléfono
	CreatedAt time.Time
}

// SupplierProduct relaciona proveedor ↔ producto con precio y lead time.
type SupplierProduct struct {
	SupplierID   string
	ProductID    string
	Price        decimal.Decimal // precio de compra al proveedor
	LeadTimeDays int
}
