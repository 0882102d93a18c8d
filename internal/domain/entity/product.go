package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario (multi-bodega).
// SKU se guarda en forma canónica (mayúsculas, sin espacios laterales) y es
// único por empresa; la unicidad la garantiza el constraint de la base de
// datos al commit, no un pre-chequeo de aplicación.
// El stock se maneja por bodega en Stock y solo vía movimientos.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, decimal exacto (nunca float)
	IsBundle    bool
	// LowStockThreshold nil significa "sin alertas" para este producto.
	LowStockThreshold *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
