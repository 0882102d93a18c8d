package repository

import (
	"context"
	"time"
)

// SalesRepository agrega ventas recientes por producto. La ventana es un
// intervalo semiabierto [from, to): determinista para un "now" fijo.
// Fuente: asientos del ledger con razón "sale" (unidades vendidas =
// -change_amount), en todas las bodegas.
type SalesRepository interface {
	TrailingSales(ctx context.Context, productID string, from, to time.Time) (int64, error)
}
