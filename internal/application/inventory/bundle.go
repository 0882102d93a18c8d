package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// BundleUseCase administra la composición de bundles. La política de
// descuento de stock por componentes queda fuera del núcleo; aquí solo se
// garantiza que el grafo de composición sea acíclico.
type BundleUseCase struct {
	productRepo repository.ProductRepository
	bundleRepo  repository.BundleComponentRepository
}

// NewBundleUseCase construye el caso de uso.
func NewBundleUseCase(productRepo repository.ProductRepository, bundleRepo repository.BundleComponentRepository) *BundleUseCase {
	return &BundleUseCase{productRepo: productRepo, bundleRepo: bundleRepo}
}

// AddComponent agrega un componente a un bundle. Rechaza multiplicador <= 0,
// auto-referencia y cualquier ciclo transitivo: si desde el componente se
// alcanza el bundle siguiendo el grafo de composición, agregar la arista
// cerraría un ciclo.
func (uc *BundleUseCase) AddComponent(ctx context.Context, companyID, bundleID string, in dto.AddBundleComponentRequest) error {
	if bundleID == "" || in.ComponentID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if bundleID == in.ComponentID {
		return domain.ErrBundleCycle
	}

	bundle, err := uc.productRepo.GetByID(ctx, bundleID)
	if err != nil {
		return err
	}
	if bundle == nil {
		return domain.ErrNotFound
	}
	if bundle.CompanyID != companyID {
		return domain.ErrForbidden
	}
	if !bundle.IsBundle {
		return domain.ErrInvalidInput
	}
	component, err := uc.productRepo.GetByID(ctx, in.ComponentID)
	if err != nil {
		return err
	}
	if component == nil {
		return domain.ErrNotFound
	}
	if component.CompanyID != companyID {
		return domain.ErrForbidden
	}

	reachable, err := uc.reaches(ctx, in.ComponentID, bundleID)
	if err != nil {
		return err
	}
	if reachable {
		return domain.ErrBundleCycle
	}

	return uc.bundleRepo.Add(ctx, &entity.BundleComponent{
		BundleID:    bundleID,
		ComponentID: in.ComponentID,
		Quantity:    in.Quantity,
	})
}

// reaches hace BFS sobre el grafo de composición: ¿se alcanza target desde
// from? Visited evita re-expandir nodos en grafos compartidos.
func (uc *BundleUseCase) reaches(ctx context.Context, from, target string) (bool, error) {
	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		components, err := uc.bundleRepo.ListComponents(ctx, current)
		if err != nil {
			return false, err
		}
		for _, c := range components {
			if c.ComponentID == target {
				return true, nil
			}
			if !visited[c.ComponentID] {
				visited[c.ComponentID] = true
				queue = append(queue, c.ComponentID)
			}
		}
	}
	return false, nil
}
