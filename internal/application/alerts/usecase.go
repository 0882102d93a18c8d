package alerts

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

// LowStockAlertUseCase calcula las alertas de bajo stock de una empresa:
// cruza stock actual, umbral por producto y velocidad de ventas de los
// últimos 30 días, y proyecta el quiebre de stock. Solo lectura, corre
// contra un snapshot: los resultados son "al momento de la lectura".
type LowStockAlertUseCase struct {
	stockRepo    repository.StockRepository
	salesRepo    repository.SalesRepository
	supplierRepo repository.SupplierRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewLowStockAlertUseCase construye el motor de alertas. now se inyecta
// para fijar la ventana en tests.
func NewLowStockAlertUseCase(
	stockRepo repository.StockRepository,
	salesRepo repository.SalesRepository,
	supplierRepo repository.SupplierRepository,
	log *logger.Logger,
	now func() time.Time,
) *LowStockAlertUseCase {
	return &LowStockAlertUseCase{
		stockRepo:    stockRepo,
		salesRepo:    salesRepo,
		supplierRepo: supplierRepo,
		log:          log,
		now:          now,
	}
}

// ComputeAlerts evalúa cada par (producto, bodega) con umbral definido.
// Reglas:
//   - sin ventas en 30 días → sin alerta (producto sin rotación no es riesgo
//     accionable, política deliberada);
//   - stock >= umbral → sin alerta;
//   - consumo diario = ventas/30; quiebre = floor(stock/consumo), nil si
//     consumo 0;
//   - proveedor más barato adjunto si existe; su ausencia nunca suprime la
//     alerta.
//
// Un par con datos opcionales fallidos se omite, nunca aborta el lote.
// La cancelación del contexto corta el cómputo entre pares (no hay efectos
// que limpiar).
func (uc *LowStockAlertUseCase) ComputeAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertListResponse, error) {
	now := uc.now()
	from := now.AddDate(0, 0, -domaininv.AlertWindowDays)

	candidates, err := uc.stockRepo.ListAlertCandidates(ctx, companyID)
	if err != nil {
		return nil, err
	}

	// Ventas memoizadas por producto: la ventana es por producto en todas
	// las bodegas, no por par.
	salesByProduct := make(map[string]int64)
	salesFailed := make(map[string]bool)

	alerts := make([]dto.LowStockAlertDTO, 0)
	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sales, ok := salesByProduct[cand.ProductID]
		if !ok {
			if salesFailed[cand.ProductID] {
				continue
			}
			sales, err = uc.salesRepo.TrailingSales(ctx, cand.ProductID, from, now)
			if err != nil {
				// Un par malo no tumba el lote completo
				salesFailed[cand.ProductID] = true
				uc.log.Warn().Err(err).
					Str("product_id", cand.ProductID).
					Msg("ventas no disponibles, par omitido")
				continue
			}
			salesByProduct[cand.ProductID] = sales
		}

		if sales == 0 {
			continue
		}
		if cand.Quantity >= cand.Threshold {
			continue
		}

		usage := domaininv.DailyUsage(sales, domaininv.AlertWindowDays)
		days := domaininv.DaysUntilStockout(cand.Quantity, usage)

		alert := dto.LowStockAlertDTO{
			ProductID:         cand.ProductID,
			ProductName:       cand.ProductName,
			SKU:               cand.SKU,
			WarehouseID:       cand.WarehouseID,
			WarehouseName:     cand.WarehouseName,
			CurrentStock:      cand.Quantity,
			Threshold:         cand.Threshold,
			SalesLast30Days:   sales,
			DaysUntilStockout: days,
		}

		// Proveedor más barato; si no hay (o falla la consulta) la alerta
		// sale igual con supplier null
		supplier, err := uc.supplierRepo.GetCheapestByProduct(ctx, cand.ProductID)
		if err != nil {
			uc.log.Warn().Err(err).
				Str("product_id", cand.ProductID).
				Msg("proveedor no disponible para la alerta")
		} else if supplier != nil {
			alert.Supplier = &dto.AlertSupplierDTO{
				ID:      supplier.ID,
				Name:    supplier.Name,
				Contact: supplier.Contact,
			}
		}

		alerts = append(alerts, alert)
	}

	// Orden estable y determinista: quiebre más cercano primero (nil al
	// final), luego producto y bodega
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		switch {
		case a.DaysUntilStockout == nil && b.DaysUntilStockout != nil:
			return false
		case a.DaysUntilStockout != nil && b.DaysUntilStockout == nil:
			return true
		case a.DaysUntilStockout != nil && b.DaysUntilStockout != nil &&
			*a.DaysUntilStockout != *b.DaysUntilStockout:
			return *a.DaysUntilStockout < *b.DaysUntilStockout
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		return a.WarehouseID < b.WarehouseID
	})

	return &dto.LowStockAlertListResponse{
		Alerts:      alerts,
		TotalAlerts: len(alerts),
	}, nil
}
