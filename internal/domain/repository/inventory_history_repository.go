package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// InventoryHistoryRepository define el puerto del ledger append-only.
// No hay Update ni Delete: los asientos son inmutables.
type InventoryHistoryRepository interface {
	Append(ctx context.Context, entry *entity.InventoryHistoryEntry) error
	ListByPair(ctx context.Context, productID, warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryHistoryEntry, error)
	// SumByPair devuelve la suma de ChangeAmount del par; debe igualar
	// Stock.Quantity (invariante de reconciliación).
	SumByPair(ctx context.Context, productID, warehouseID string) (int64, error)
}
