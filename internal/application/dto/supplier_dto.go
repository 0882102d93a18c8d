package dto

import "github.com/shopspring/decimal"

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// SupplierResponse representación de un proveedor en respuestas.
type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// AddSupplierProductRequest body para POST /api/suppliers/{id}/products.
type AddSupplierProductRequest struct {
	ProductID    string          `json:"product_id"`
	Price        decimal.Decimal `json:"price"`
	LeadTimeDays int             `json:"lead_time_days"`
}
