package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza commit-o-rollback en toda salida,
// incluidas las de error: ninguna mutación del motor queda a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		historyRepo repository.InventoryHistoryRepository,
	) error) error
}
