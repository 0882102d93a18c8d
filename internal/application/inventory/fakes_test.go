package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type pairKey struct {
	productID   string
	warehouseID string
}

// fakeStore agrupa el estado compartido por los fakes de repositorio, con el
// mismo contrato que la base de datos real: unicidad de SKU por empresa,
// fila de stock ausente = cantidad 0, ledger append-only.
type fakeStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	stock    map[pairKey]*entity.Stock
	history  []*entity.InventoryHistoryEntry
	bundles  map[string][]*entity.BundleComponent // bundleID → componentes
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*entity.Product),
		stock:    make(map[pairKey]*entity.Stock),
		bundles:  make(map[string][]*entity.BundleComponent),
	}
}

// snapshot copia el estado mutable para poder simular rollback.
func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	for k, v := range s.stock {
		st := *v
		cp.stock[k] = &st
	}
	cp.history = append([]*entity.InventoryHistoryEntry(nil), s.history...)
	for k, v := range s.bundles {
		cp.bundles[k] = append([]*entity.BundleComponent(nil), v...)
	}
	return cp
}

func (s *fakeStore) restore(cp *fakeStore) {
	s.products = cp.products
	s.stock = cp.stock
	s.history = cp.history
	s.bundles = cp.bundles
}

// ── ProductRepository ────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	for _, p := range r.store.products {
		if p.CompanyID == product.CompanyID && p.SKU == product.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	cp := *product
	r.store.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.CompanyID == companyID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.store.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	r.store.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.store.products, id)
	return nil
}

// ── StockRepository ──────────────────────────────────────────────────────────

type fakeStockRepo struct{ store *fakeStore }

func (r *fakeStockRepo) Get(_ context.Context, productID, warehouseID string) (*entity.Stock, error) {
	if st, ok := r.store.stock[pairKey{productID, warehouseID}]; ok {
		cp := *st
		return &cp, nil
	}
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: 0}, nil
}

func (r *fakeStockRepo) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.Stock, error) {
	// Mismo contrato que el adaptador real: el par sin fila se materializa en
	// 0 dentro de la transacción (el rollback del snapshot la deshace); el
	// bloqueo de fila lo simula el mutex del fakeTxRunner.
	key := pairKey{productID, warehouseID}
	if _, ok := r.store.stock[key]; !ok {
		r.store.stock[key] = &entity.Stock{ProductID: productID, WarehouseID: warehouseID}
	}
	return r.Get(ctx, productID, warehouseID)
}

func (r *fakeStockRepo) Upsert(_ context.Context, stock *entity.Stock) error {
	cp := *stock
	r.store.stock[pairKey{stock.ProductID, stock.WarehouseID}] = &cp
	return nil
}

func (r *fakeStockRepo) ListByWarehouse(_ context.Context, warehouseID string, _, _ int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, st := range r.store.stock {
		if st.WarehouseID == warehouseID {
			cp := *st
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListAlertCandidates(_ context.Context, companyID string) ([]repository.AlertCandidate, error) {
	var out []repository.AlertCandidate
	for _, st := range r.store.stock {
		p, ok := r.store.products[st.ProductID]
		if !ok || p.CompanyID != companyID || p.IsBundle || p.LowStockThreshold == nil {
			continue
		}
		out = append(out, repository.AlertCandidate{
			ProductID:   p.ID,
			ProductName: p.Name,
			SKU:         p.SKU,
			WarehouseID: st.WarehouseID,
			Quantity:    st.Quantity,
			Threshold:   *p.LowStockThreshold,
		})
	}
	return out, nil
}

// ── InventoryHistoryRepository ───────────────────────────────────────────────

type fakeHistoryRepo struct{ store *fakeStore }

func (r *fakeHistoryRepo) Append(_ context.Context, entry *entity.InventoryHistoryEntry) error {
	cp := *entry
	r.store.history = append(r.store.history, &cp)
	return nil
}

func (r *fakeHistoryRepo) ListByPair(_ context.Context, productID, warehouseID string, from, to *time.Time, _, _ int) ([]*entity.InventoryHistoryEntry, error) {
	var out []*entity.InventoryHistoryEntry
	for _, e := range r.store.history {
		if e.ProductID != productID || e.WarehouseID != warehouseID {
			continue
		}
		if from != nil && e.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !e.CreatedAt.Before(*to) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeHistoryRepo) SumByPair(_ context.Context, productID, warehouseID string) (int64, error) {
	var sum int64
	for _, e := range r.store.history {
		if e.ProductID == productID && e.WarehouseID == warehouseID {
			sum += e.ChangeAmount
		}
	}
	return sum, nil
}

// ── BundleComponentRepository ────────────────────────────────────────────────

type fakeBundleRepo struct{ store *fakeStore }

func (r *fakeBundleRepo) Add(_ context.Context, component *entity.BundleComponent) error {
	cp := *component
	r.store.bundles[component.BundleID] = append(r.store.bundles[component.BundleID], &cp)
	return nil
}

func (r *fakeBundleRepo) ListComponents(_ context.Context, bundleID string) ([]*entity.BundleComponent, error) {
	return append([]*entity.BundleComponent(nil), r.store.bundles[bundleID]...), nil
}

// ── WarehouseRepository ──────────────────────────────────────────────────────

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(whs ...*entity.Warehouse) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
	for _, w := range whs {
		r.warehouses[w.ID] = w
	}
	return r
}

func (r *fakeWarehouseRepo) Create(_ context.Context, warehouse *entity.Warehouse) error {
	r.warehouses[warehouse.ID] = warehouse
	return nil
}

func (r *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	return w, nil
}

func (r *fakeWarehouseRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// fakeTxRunner serializa transacciones con un mutex (equivalente al bloqueo
// de fila de la BD real para este juego de tests) y restaura el snapshot del
// estado cuando fn devuelve error, imitando el rollback.
type fakeTxRunner struct {
	store *fakeStore
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	historyRepo repository.InventoryHistoryRepository,
) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	before := t.store.snapshot()
	err := fn(
		&fakeProductRepo{store: t.store},
		&fakeStockRepo{store: t.store},
		&fakeHistoryRepo{store: t.store},
	)
	if err != nil {
		t.store.restore(before)
		return err
	}
	return nil
}
