package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// SupplierUseCase administración mínima de proveedores. El motor de alertas
// los consume como entrada de solo lectura.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create registra un proveedor de la empresa.
func (uc *SupplierUseCase) Create(ctx context.Context, companyID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrMissingFields
	}
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Contact:   in.Contact,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact}, nil
}

// List lista proveedores de la empresa.
func (uc *SupplierUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact})
	}
	return items, nil
}

// AddProduct asocia un producto al proveedor con precio y lead time.
func (uc *SupplierUseCase) AddProduct(ctx context.Context, companyID, supplierID string, in dto.AddSupplierProductRequest) error {
	if supplierID == "" || in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.repo.AddProduct(ctx, &entity.SupplierProduct{
		SupplierID:   supplierID,
		ProductID:    in.ProductID,
		Price:        in.Price,
		LeadTimeDays: in.LeadTimeDays,
	})
}
