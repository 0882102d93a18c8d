package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

const testProductID = "00000000-0000-0000-0000-0000000000p1"

// seedStore deja un producto de la empresa de test y, si initialQty > 0, su
// fila de stock con el asiento del ledger que la respalda.
func seedStore(t *testing.T, store *fakeStore, initialQty int64) {
	t.Helper()
	store.products[testProductID] = &entity.Product{
		ID:        testProductID,
		CompanyID: testCompanyID,
		SKU:       "SEED-1",
		Name:      "Producto Semilla",
		Price:     decimal.RequireFromString("1000"),
	}
	if initialQty > 0 {
		store.stock[pairKey{testProductID, testWarehouseID}] = &entity.Stock{
			ProductID:   testProductID,
			WarehouseID: testWarehouseID,
			Quantity:    initialQty,
			UpdatedAt:   testNow,
		}
		store.history = append(store.history, &entity.InventoryHistoryEntry{
			ID:           "seed-entry",
			ProductID:    testProductID,
			WarehouseID:  testWarehouseID,
			ChangeAmount: initialQty,
			Reason:       entity.ReasonAdjustment,
			CreatedAt:    testNow,
		})
	}
}

func newAdjustStockUC(store *fakeStore) *inventory.AdjustStockUseCase {
	warehouseRepo := newFakeWarehouseRepo(
		&entity.Warehouse{ID: testWarehouseID, CompanyID: testCompanyID, Name: "Bodega Central"},
	)
	return inventory.NewAdjustStockUseCase(
		&fakeTxRunner{store: store},
		&fakeProductRepo{store: store},
		warehouseRepo,
		fixedNow,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y tenencia
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_EntradaInvalida(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, 10)
	uc := newAdjustStockUC(store)

	cases := []dto.AdjustStockRequest{
		{ProductID: "", WarehouseID: testWarehouseID, Delta: 1, Reason: entity.ReasonSale},
		{ProductID: testProductID, WarehouseID: "", Delta: 1, Reason: entity.ReasonSale},
		{ProductID: testProductID, WarehouseID: testWarehouseID, Delta: 0, Reason: entity.ReasonSale},
		{ProductID: testProductID, WarehouseID: testWarehouseID, Delta: 1, Reason: "regalo"},
	}
	for _, in := range cases {
		_, err := uc.Adjust(context.Background(), testCompanyID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestAdjustStock_ProductoDeOtraEmpresa(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, 10)
	uc := newAdjustStockUC(store)

	_, err := uc.Adjust(context.Background(), otherCompanyID, dto.AdjustStockRequest{
		ProductID: testProductID, WarehouseID: testWarehouseID, Delta: 1, Reason: entity.ReasonPurchase,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Semántica del ajuste
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_FilaAusenteEsCantidadCero(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, 0) // producto sin fila de stock
	uc := newAdjustStockUC(store)

	resp, err := uc.Adjust(context.Background(), testCompanyID, dto.AdjustStockRequest{
		ProductID: testProductID, WarehouseID: testWarehouseID, Delta: 7, Reason: entity.ReasonPurchase,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Quantity, "0 + 7 = 7 con la fila creada al vuelo")

	// Egreso sobre fila ausente: 0 - 1 quedaría negativo
	store2 := newFakeStore()
	seedStore(t, store2, 0)
	uc2 := newAdjustStockUC(store2)
	_, err = uc2.Adjust(context.Background(), testCompanyID, dto.AdjustStockRequest{
		ProductID: testProductID, WarehouseID: testWarehouseID, Delta: -1, Reason: entity.ReasonSale,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	// El rollback también deshace la fila en 0 materializada para el bloqueo
	assert.Empty(t, store2.stock, "un ajuste rechazado no deja fila fantasma")
}

func TestAdjustStock_StockInsuficienteNoDejaRastro(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, 5)
	uc := newAdjustStockUC(store)

	_, err := uc.Adjust(context.Background(), testCompanyID, dto.AdjustStockRequest{
		ProductID: testProductID, WarehouseID: testWarehouseID, Delta: -8, Reason: entity.ReasonSale,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La cantidad queda intacta y el ledger no recibe asiento del rechazo
	st := store.stock[pairKey{testProductID, testWarehouseID}]
	assert.Equal(t, int64(5), st.Quantity)
	assert.Len(t, store.history, 1, "solo el asiento semilla")
}

func TestAdjustStock_EgresoExactoDejaCero(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, 5)
	uc := newAdjustStockUC(store)

	resp, err := uc.Adjust(context.Background(), testCompanyID, dto.AdjustStockRequest{
		ProductID: testProductID, WarehouseID: testWarehouseID, Delta: -5, Reason: entity.ReasonSale,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Quantity, "llegar exactamente a 0 es válido")
}

func TestAdjustStock_AsientoEnElLedgerPorAjuste(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, 10)
	uc := newAdjustStockUC(store)

	_, err := uc.Adjust(context.Background(), testCompanyID, dto.AdjustStockRequest{
		ProductID: testProductID, WarehouseID: testWarehouseID, Delta: -3, Reason: entity.ReasonSale,
	})
	require.NoError(t, err)

	require.Len(t, store.history, 2)
	entry := store.history[1]
	assert.Equal(t, int64(-3), entry.ChangeAmount)
	assert.Equal(t, entity.ReasonSale, entry.Reason)

	// Invariante de reconciliación: fila == suma del ledger
	var sum int64
	for _, e := range store.history {
		sum += e.ChangeAmount
	}
	assert.Equal(t, store.stock[pairKey{testProductID, testWarehouseID}].Quantity, sum)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: ajustes simultáneos sobre el mismo par
// ──────────────────────────────────────────────────────────────────────────────

// Con N goroutines ajustando el mismo par, la cantidad final debe ser el
// inicial más la suma de los deltas aceptados, y el ledger debe tener
// exactamente un asiento por ajuste aceptado (sin lost updates).
func TestAdjustStock_AjustesConcurrentes(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, 100)
	uc := newAdjustStockUC(store)

	deltas := []int64{-10, 25, -5, -30, 40, -15, 10, -20, 5, -8}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var acceptedSum int64
	var accepted int

	for _, d := range deltas {
		wg.Add(1)
		go func(delta int64) {
			defer wg.Done()
			reason := entity.ReasonSale
			if delta > 0 {
				reason = entity.ReasonPurchase
			}
			_, err := uc.Adjust(context.Background(), testCompanyID, dto.AdjustStockRequest{
				ProductID: testProductID, WarehouseID: testWarehouseID, Delta: delta, Reason: reason,
			})
			if err == nil {
				mu.Lock()
				acceptedSum += delta
				accepted++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			}
		}(d)
	}
	wg.Wait()

	st := store.stock[pairKey{testProductID, testWarehouseID}]
	assert.Equal(t, 100+acceptedSum, st.Quantity, "final = inicial + suma de deltas aceptados")
	assert.GreaterOrEqual(t, st.Quantity, int64(0))
	// 1 asiento semilla + 1 por ajuste aceptado
	assert.Len(t, store.history, 1+accepted)
}

// El primer par de ajustes sobre un par recién estrenado (sin fila de stock)
// tampoco puede pisarse: la fila se materializa en 0 bajo el bloqueo antes de
// leer, así que ningún ingreso concurrente se pierde.
func TestAdjustStock_AjustesConcurrentesSobreParNuevo(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, 0) // producto sin fila de stock ni asientos
	uc := newAdjustStockUC(store)

	deltas := []int64{5, 3, 8, 2, 7}
	var total int64
	for _, d := range deltas {
		total += d
	}

	var wg sync.WaitGroup
	for _, d := range deltas {
		wg.Add(1)
		go func(delta int64) {
			defer wg.Done()
			_, err := uc.Adjust(context.Background(), testCompanyID, dto.AdjustStockRequest{
				ProductID: testProductID, WarehouseID: testWarehouseID, Delta: delta, Reason: entity.ReasonPurchase,
			})
			assert.NoError(t, err)
		}(d)
	}
	wg.Wait()

	st := store.stock[pairKey{testProductID, testWarehouseID}]
	require.NotNil(t, st)
	assert.Equal(t, total, st.Quantity, "ningún ingreso concurrente se pierde")
	assert.Len(t, store.history, len(deltas))

	// Invariante de reconciliación tras la tormenta
	var sum int64
	for _, e := range store.history {
		sum += e.ChangeAmount
	}
	assert.Equal(t, st.Quantity, sum)
}
