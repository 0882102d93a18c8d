package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Price viaja como string y se parsea a decimal exacto antes de tocar la
// base de datos (nunca float). Si InitialWarehouseID viene, se crea la fila
// de stock inicial en la misma transacción que el producto.
type CreateProductRequest struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	IsBundle    bool   `json:"is_bundle,omitempty"`
	// LowStockThreshold nil = sin alertas para este producto.
	LowStockThreshold *int64 `json:"low_stock_threshold,omitempty"`

	InitialWarehouseID string `json:"initial_warehouse_id,omitempty"`
	InitialQuantity    int64  `json:"initial_quantity,omitempty"`
	// InitialAsPurchase true registra el stock inicial con razón "purchase"
	// en lugar de "adjustment".
	InitialAsPurchase bool `json:"initial_as_purchase,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/{id} (campos opcionales).
// El stock no se toca por aquí: solo vía movimientos.
type UpdateProductRequest struct {
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	Price             *string `json:"price,omitempty"`
	LowStockThreshold *int64  `json:"low_stock_threshold,omitempty"`
	ClearThreshold    bool    `json:"clear_threshold,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	IsBundle          bool            `json:"is_bundle"`
	LowStockThreshold *int64          `json:"low_stock_threshold,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AddBundleComponentRequest body para POST /api/products/{id}/components.
type AddBundleComponentRequest struct {
	ComponentID string `json:"component_id"`
	Quantity    int64  `json:"quantity"`
}
