package entity

import "time"

// Stock representa la cantidad actual de un producto en una bodega.
// Identidad compuesta (ProductID, WarehouseID): a lo sumo una fila por par.
// Quantity nunca baja de cero; es la caché materializada de la suma del
// ledger (inventory_history) y se reconcilia contra él.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
