package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// AdjustStockUseCase aplica un delta con signo al stock de un par
// (producto, bodega) y asienta el cambio en el ledger, todo en una
// transacción con bloqueo de fila (SELECT FOR UPDATE). Dos ajustes
// concurrentes al mismo par se serializan: no hay lost updates.
type AdjustStockUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	now           func() time.Time
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	now func() time.Time,
) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, productRepo: productRepo, warehouseRepo: warehouseRepo, now: now}
}

// Adjust valida delta y razón, bloquea la fila de stock (ausente = cantidad
// 0, se crea), calcula la nueva cantidad y la rechaza completa si quedaría
// negativa (ErrInsufficientStock, nada se aplica). Fila y asiento del ledger
// se escriben en la misma transacción.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, companyID string, in dto.AdjustStockRequest) (*dto.StockResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Delta == 0 || !entity.ValidReason(in.Reason) {
		return nil, domain.ErrInvalidInput
	}

	// Producto y bodega deben existir y pertenecer a la empresa
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil || wh.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	var out *dto.StockResponse

	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		stockRepo repository.StockRepository,
		historyRepo repository.InventoryHistoryRepository,
	) error {
		// Bloquea la fila del par; fila ausente se trata como cantidad 0
		stock, err := stockRepo.GetForUpdate(ctx, in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		newQty := stock.Quantity + in.Delta
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		stock.Quantity = newQty
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return err
		}
		entry := &entity.InventoryHistoryEntry{
			ID:           uuid.New().String(),
			ProductID:    in.ProductID,
			WarehouseID:  in.WarehouseID,
			ChangeAmount: in.Delta,
			Reason:       in.Reason,
			CreatedAt:    now,
		}
		if err := historyRepo.Append(ctx, entry); err != nil {
			return err
		}
		out = &dto.StockResponse{
			ProductID:   stock.ProductID,
			WarehouseID: stock.WarehouseID,
			Quantity:    stock.Quantity,
			UpdatedAt:   stock.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
