package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// CreateProductUseCase crea un producto y su stock inicial como una sola
// unidad atómica: o existen ambos o no existe ninguno. La unicidad del SKU la
// resuelve el constraint de la base de datos al commit — sin pre-chequeo de
// aplicación, para cerrar la ventana de carrera check-then-insert.
type CreateProductUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	now           func() time.Time
}

// NewCreateProductUseCase construye el caso de uso. now se inyecta para
// tests deterministas (pasar time.Now en producción).
func NewCreateProductUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository, now func() time.Time) *CreateProductUseCase {
	return &CreateProductUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo, now: now}
}

// Create valida en orden (campos → precio → cantidad), abre la transacción,
// inserta el producto y, si vino bodega inicial, la fila de stock más el
// asiento del ledger. Violación de unicidad del SKU → ErrDuplicateSKU y
// rollback total.
func (uc *CreateProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	// 1. Campos requeridos
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrMissingFields
	}
	// 2. Precio: decimal exacto y estrictamente positivo (0 no se permite)
	price, err := decimal.NewFromString(in.Price)
	if err != nil || !price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidPrice
	}
	// 3. Cantidades no negativas
	if in.InitialQuantity < 0 {
		return nil, domain.ErrNegativeQuantity
	}
	if in.LowStockThreshold != nil && *in.LowStockThreshold < 0 {
		return nil, domain.ErrNegativeQuantity
	}

	// La bodega inicial debe existir y ser de la empresa (colaborador externo,
	// se valida antes de abrir la transacción)
	if in.InitialWarehouseID != "" {
		wh, err := uc.warehouseRepo.GetByID(ctx, in.InitialWarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil || wh.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	now := uc.now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		SKU:               domaininv.NormalizeSKU(in.SKU),
		Name:              in.Name,
		Description:       in.Description,
		Price:             price,
		IsBundle:          in.IsBundle,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		historyRepo repository.InventoryHistoryRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if in.InitialWarehouseID == "" {
			return nil
		}
		stock := &entity.Stock{
			ProductID:   product.ID,
			WarehouseID: in.InitialWarehouseID,
			Quantity:    in.InitialQuantity,
			UpdatedAt:   now,
		}
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return err
		}
		reason := entity.ReasonAdjustment
		if in.InitialAsPurchase {
			reason = entity.ReasonPurchase
		}
		entry := &entity.InventoryHistoryEntry{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			WarehouseID:  in.InitialWarehouseID,
			ChangeAmount: in.InitialQuantity,
			Reason:       reason,
			CreatedAt:    now,
		}
		return historyRepo.Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		IsBundle:          p.IsBundle,
		LowStockThreshold: p.LowStockThreshold,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
