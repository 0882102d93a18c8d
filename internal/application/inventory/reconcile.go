package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ReconcileUseCase verifica el invariante derivable del ledger: la cantidad
// de la fila materializada debe igualar la suma de ChangeAmount de todos los
// asientos del par. Solo lectura.
type ReconcileUseCase struct {
	stockRepo   repository.StockRepository
	historyRepo repository.InventoryHistoryRepository
}

// NewReconcileUseCase construye el verificador.
func NewReconcileUseCase(stockRepo repository.StockRepository, historyRepo repository.InventoryHistoryRepository) *ReconcileUseCase {
	return &ReconcileUseCase{stockRepo: stockRepo, historyRepo: historyRepo}
}

// Reconcile compara fila vs. ledger para un par (producto, bodega).
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, productID, warehouseID string) (*dto.ReconcileResponse, error) {
	if productID == "" || warehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.Get(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	sum, err := uc.historyRepo.SumByPair(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return &dto.ReconcileResponse{
		ProductID:   productID,
		WarehouseID: warehouseID,
		RowQuantity: stock.Quantity,
		LedgerSum:   sum,
		Consistent:  stock.Quantity == sum,
	}, nil
}
