package dto

import "time"

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Delta es un entero con signo distinto de cero; Reason una de las cuatro
// razones del ledger (sale, purchase, adjustment, transfer).
type AdjustStockRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Delta       int64  `json:"delta"`
	Reason      string `json:"reason"`
}

// StockResponse cantidad actual de un par (producto, bodega).
type StockResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HistoryEntryResponse asiento del ledger en respuestas.
type HistoryEntryResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	WarehouseID  string    `json:"warehouse_id"`
	ChangeAmount int64     `json:"change_amount"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReconcileResponse compara la fila materializada contra la suma del ledger.
type ReconcileResponse struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	RowQuantity int64  `json:"row_quantity"`
	LedgerSum   int64  `json:"ledger_sum"`
	Consistent  bool   `json:"consistent"`
}

// TrailingSalesResponse total vendido de un producto en la ventana.
type TrailingSalesResponse struct {
	ProductID  string `json:"product_id"`
	WindowDays int    `json:"window_days"`
	UnitsSold  int64  `json:"units_sold"`
}
