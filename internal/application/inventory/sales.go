package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TrailingSalesUseCase expone el agregador de ventas: total vendido de un
// producto en todas las bodegas dentro de la ventana [now − días, now).
// La ventana semiabierta y el reloj inyectado hacen el resultado
// reproducible para un "now" fijo.
type TrailingSalesUseCase struct {
	salesRepo repository.SalesRepository
	now       func() time.Time
}

// NewTrailingSalesUseCase construye el agregador.
func NewTrailingSalesUseCase(salesRepo repository.SalesRepository, now func() time.Time) *TrailingSalesUseCase {
	return &TrailingSalesUseCase{salesRepo: salesRepo, now: now}
}

// TrailingSales devuelve las unidades vendidas en la ventana. Cero asientos
// coincidentes produce 0, no error.
func (uc *TrailingSalesUseCase) TrailingSales(ctx context.Context, productID string, windowDays int) (*dto.TrailingSalesResponse, error) {
	if productID == "" || windowDays <= 0 {
		return nil, domain.ErrInvalidInput
	}
	to := uc.now()
	from := to.AddDate(0, 0, -windowDays)
	units, err := uc.salesRepo.TrailingSales(ctx, productID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.TrailingSalesResponse{
		ProductID:  productID,
		WindowDays: windowDays,
		UnitsSold:  units,
	}, nil
}
