package entity

import "time"

// Razones válidas para un asiento del ledger de inventario.
const (
	ReasonSale       = "sale"
	ReasonPurchase   = "purchase"
	ReasonAdjustment = "adjustment"
	ReasonTransfer   = "transfer"
)

// ValidReason indica si reason es una de las cuatro razones enumeradas.
func ValidReason(reason string) bool {
	switch reason {
	case ReasonSale, ReasonPurchase, ReasonAdjustment, ReasonTransfer:
		return true
	}
	return false
}

// InventoryHistoryEntry es un asiento inmutable del ledger de inventario.
// Se crea exactamente una vez por mutación exitosa, en la misma transacción
// que la actualización de Stock; nunca se edita ni se borra. La suma de
// ChangeAmount por par (producto, bodega) debe igualar Stock.Quantity.
type InventoryHistoryEntry struct {
	ID           string
	ProductID    string
	WarehouseID  string
	ChangeAmount int64  // con signo: negativo = salida
	Reason       string // sale, purchase, adjustment, transfer
	CreatedAt    time.Time
}
