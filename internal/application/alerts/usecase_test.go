package alerts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/alerts"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

const testCompanyID = "00000000-0000-0000-0000-0000000000c1"

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	candidates []repository.AlertCandidate
	err        error
}

func (r *fakeStockRepo) Get(context.Context, string, string) (*entity.Stock, error) {
	return nil, errors.New("no usado")
}
func (r *fakeStockRepo) GetForUpdate(context.Context, string, string) (*entity.Stock, error) {
	return nil, errors.New("no usado")
}
func (r *fakeStockRepo) Upsert(context.Context, *entity.Stock) error {
	return errors.New("no usado")
}
func (r *fakeStockRepo) ListByWarehouse(context.Context, string, int, int) ([]*entity.Stock, error) {
	return nil, errors.New("no usado")
}
func (r *fakeStockRepo) ListAlertCandidates(context.Context, string) ([]repository.AlertCandidate, error) {
	return r.candidates, r.err
}

type fakeSalesRepo struct {
	sales   map[string]int64 // productID → unidades vendidas en la ventana
	failFor map[string]bool
	calls   int // cuenta consultas para verificar la memoización
}

func (r *fakeSalesRepo) TrailingSales(_ context.Context, productID string, from, to time.Time) (int64, error) {
	r.calls++
	if r.failFor[productID] {
		return 0, errors.New("timeout consultando ventas")
	}
	return r.sales[productID], nil
}

type fakeSupplierRepo struct {
	cheapest map[string]*entity.Supplier // productID → proveedor más barato
	failFor  map[string]bool
}

func (r *fakeSupplierRepo) Create(context.Context, *entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) ListByCompany(context.Context, string, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *fakeSupplierRepo) AddProduct(context.Context, *entity.SupplierProduct) error { return nil }
func (r *fakeSupplierRepo) GetCheapestByProduct(_ context.Context, productID string) (*entity.Supplier, error) {
	if r.failFor[productID] {
		return nil, errors.New("proveedor no disponible")
	}
	return r.cheapest[productID], nil
}

func candidate(productID, warehouseID string, qty, threshold int64) repository.AlertCandidate {
	return repository.AlertCandidate{
		ProductID:     productID,
		ProductName:   "Producto " + productID,
		SKU:           "SKU-" + productID,
		WarehouseID:   warehouseID,
		WarehouseName: "Bodega " + warehouseID,
		Quantity:      qty,
		Threshold:     threshold,
	}
}

func newUC(stock *fakeStockRepo, sales *fakeSalesRepo, suppliers *fakeSupplierRepo) *alerts.LowStockAlertUseCase {
	if sales == nil {
		sales = &fakeSalesRepo{sales: map[string]int64{}}
	}
	if suppliers == nil {
		suppliers = &fakeSupplierRepo{}
	}
	return alerts.NewLowStockAlertUseCase(stock, sales, suppliers, logger.NewNop(), fixedNow)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de emisión
// ──────────────────────────────────────────────────────────────────────────────

// 60 unidades vendidas en 30 días y 5 en stock: consumo diario 2.0,
// quiebre proyectado en 2 días.
func TestComputeAlerts_ProyeccionDeQuiebre(t *testing.T) {
	stock := &fakeStockRepo{candidates: []repository.AlertCandidate{
		candidate("p1", "w1", 5, 10),
	}}
	sales := &fakeSalesRepo{sales: map[string]int64{"p1": 60}}
	uc := newUC(stock, sales, nil)

	resp, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, resp.Alerts, 1)

	alert := resp.Alerts[0]
	assert.Equal(t, int64(5), alert.CurrentStock)
	assert.Equal(t, int64(60), alert.SalesLast30Days)
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, int64(2), *alert.DaysUntilStockout)
	assert.Equal(t, 1, resp.TotalAlerts)
}

// La proyección usa floor: 7 en stock a 2 por día son 3 días, no 3.5.
func TestComputeAlerts_ProyeccionRedondeaHaciaAbajo(t *testing.T) {
	stock := &fakeStockRepo{candidates: []repository.AlertCandidate{
		candidate("p1", "w1", 7, 10),
	}}
	sales := &fakeSalesRepo{sales: map[string]int64{"p1": 60}}
	uc := newUC(stock, sales, nil)

	resp, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, resp.Alerts, 1)
	require.NotNil(t, resp.Alerts[0].DaysUntilStockout)
	assert.Equal(t, int64(3), *resp.Alerts[0].DaysUntilStockout)
}

func TestComputeAlerts_SinVentasNoAlerta(t *testing.T) {
	stock := &fakeStockRepo{candidates: []repository.AlertCandidate{
		candidate("p1", "w1", 1, 10), // bajo el umbral, pero sin rotación
	}}
	uc := newUC(stock, nil, nil)

	resp, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Empty(t, resp.Alerts)
	assert.Equal(t, 0, resp.TotalAlerts)
}

func TestComputeAlerts_StockSobreUmbralNoAlerta(t *testing.T) {
	stock := &fakeStockRepo{candidates: []repository.AlertCandidate{
		candidate("p1", "w1", 10, 10), // igual al umbral tampoco alerta
		candidate("p1", "w2", 50, 10),
	}}
	sales := &fakeSalesRepo{sales: map[string]int64{"p1": 30}}
	uc := newUC(stock, sales, nil)

	resp, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Empty(t, resp.Alerts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedor sugerido
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeAlerts_ProveedorMasBaratoAdjunto(t *testing.T) {
	stock := &fakeStockRepo{candidates: []repository.AlertCandidate{
		candidate("p1", "w1", 5, 10),
	}}
	sales := &fakeSalesRepo{sales: map[string]int64{"p1": 30}}
	suppliers := &fakeSupplierRepo{cheapest: map[string]*entity.Supplier{
		"p1": {ID: "s1", Name: "Distribuidora Sur", Contact: "ventas@sur.cl"},
	}}
	uc := newUC(stock, sales, suppliers)

	resp, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, resp.Alerts, 1)
	require.NotNil(t, resp.Alerts[0].Supplier)
	assert.Equal(t, "Distribuidora Sur", resp.Alerts[0].Supplier.Name)
}

// Sin proveedor, o con la consulta de proveedor fallando, la alerta sale
// igual con supplier null.
func TestComputeAlerts_SinProveedorLaAlertaSaleIgual(t *testing.T) {
	stock := &fakeStockRepo{candidates: []repository.AlertCandidate{
		candidate("p1", "w1", 5, 10),
		candidate("p2", "w1", 3, 10),
	}}
	sales := &fakeSalesRepo{sales: map[string]int64{"p1": 30, "p2": 30}}
	suppliers := &fakeSupplierRepo{failFor: map[string]bool{"p2": true}}
	uc := newUC(stock, sales, suppliers)

	resp, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, resp.Alerts, 2)
	for _, a := range resp.Alerts {
		assert.Nil(t, a.Supplier)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resiliencia y orden
// ──────────────────────────────────────────────────────────────────────────────

// Una consulta de ventas fallida omite ese producto pero no tumba el lote.
func TestComputeAlerts_FalloDeVentasOmiteElParNoElLote(t *testing.T) {
	stock := &fakeStockRepo{candidates: []repository.AlertCandidate{
		candidate("p1", "w1", 5, 10),
		candidate("p1", "w2", 4, 10), // mismo producto, también se omite
		candidate("p2", "w1", 3, 10),
	}}
	sales := &fakeSalesRepo{
		sales:   map[string]int64{"p2": 30},
		failFor: map[string]bool{"p1": true},
	}
	uc := newUC(stock, sales, nil)

	resp, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "p2", resp.Alerts[0].ProductID)
}

// Las ventas se consultan una vez por producto aunque tenga stock en varias
// bodegas.
func TestComputeAlerts_VentasMemoizadasPorProducto(t *testing.T) {
	stock := &fakeStockRepo{candidates: []repository.AlertCandidate{
		candidate("p1", "w1", 5, 10),
		candidate("p1", "w2", 4, 10),
		candidate("p1", "w3", 3, 10),
	}}
	sales := &fakeSalesRepo{sales: map[string]int64{"p1": 30}}
	uc := newUC(stock, sales, nil)

	resp, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Len(t, resp.Alerts, 3)
	assert.Equal(t, 1, sales.calls)
}

// Orden determinista: quiebre más cercano primero, con empates por producto
// y bodega.
func TestComputeAlerts_OrdenPorQuiebreProximo(t *testing.T) {
	stock := &fakeStockRepo{candidates: []repository.AlertCandidate{
		candidate("p2", "w1", 9, 10), // 30/30 = 1/día → 9 días
		candidate("p1", "w2", 2, 10), // 60/30 = 2/día → 1 día
		candidate("p1", "w1", 2, 10), // 1 día, desempata por bodega
	}}
	sales := &fakeSalesRepo{sales: map[string]int64{"p1": 60, "p2": 30}}
	uc := newUC(stock, sales, nil)

	resp, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, resp.Alerts, 3)

	assert.Equal(t, "p1", resp.Alerts[0].ProductID)
	assert.Equal(t, "w1", resp.Alerts[0].WarehouseID)
	assert.Equal(t, "p1", resp.Alerts[1].ProductID)
	assert.Equal(t, "w2", resp.Alerts[1].WarehouseID)
	assert.Equal(t, "p2", resp.Alerts[2].ProductID)
}

func TestComputeAlerts_ContextoCancelado(t *testing.T) {
	stock := &fakeStockRepo{candidates: []repository.AlertCandidate{
		candidate("p1", "w1", 5, 10),
	}}
	uc := newUC(stock, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.ComputeAlerts(ctx, testCompanyID)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputeAlerts_ErrorListandoCandidatos(t *testing.T) {
	stock := &fakeStockRepo{err: errors.New("conexión perdida")}
	uc := newUC(stock, nil, nil)

	_, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	assert.Error(t, err)
}

func TestComputeAlerts_SinCandidatosListaVacia(t *testing.T) {
	uc := newUC(&fakeStockRepo{}, nil, nil)

	resp, err := uc.ComputeAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.NotNil(t, resp.Alerts, "lista vacía, no null")
	assert.Empty(t, resp.Alerts)
}
