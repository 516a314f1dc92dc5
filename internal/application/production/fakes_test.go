package production_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// memStore implementación en memoria de todos los puertos de persistencia.
// Las implementaciones respetan los contratos de los puertos (orden FIFO,
// decremento condicional sin mutación ante faltante, contador atómico) para que
// los casos de uso se ejerciten contra la misma semántica que en PostgreSQL.
type memStore struct {
	materials *fakeMaterialRepo
	entries   *fakeEntryRepo
	usages    *fakeUsageRepo
	wastages  *fakeWastageRepo
	lots      *fakeLotRepo
	logs      *fakeLogRepo
	caps      *fakeCapRepo
	labels    *fakeLabelRepo
	products  *fakeProductRepo
	bottles   *fakeBottleRepo
	counters  *fakeCounterRepo
}

func newMemStore() *memStore {
	return &memStore{
		materials: &fakeMaterialRepo{items: map[string]*entity.RawMaterial{}},
		entries:   &fakeEntryRepo{},
		usages:    &fakeUsageRepo{},
		wastages:  &fakeWastageRepo{items: map[string]*entity.Wastage{}},
		lots:      &fakeLotRepo{},
		logs:      &fakeLogRepo{},
		caps:      &fakeCapRepo{items: map[string]*entity.Cap{}},
		labels:    &fakeLabelRepo{items: map[string]*entity.Label{}},
		products:  &fakeProductRepo{items: map[string]*entity.Product{}},
		bottles:   &fakeBottleRepo{},
		counters:  &fakeCounterRepo{values: map[string]int64{}},
	}
}

// fakeTxRunner entrega los repos del memStore sin transacción real. Los casos de
// uso validan todo antes de mutar, así que los escenarios de fallo de estos tests
// no dependen de rollback.
type fakeTxRunner struct {
	s *memStore
}

func (r *fakeTxRunner) RunMaterials(ctx context.Context, fn func(
	repository.RawMaterialRepository,
	repository.RawMaterialEntryRepository,
	repository.DirectUsageRepository,
) error) error {
	return fn(r.s.materials, r.s.entries, r.s.usages)
}

func (r *fakeTxRunner) RunIntermediate(ctx context.Context, fn func(
	repository.RawMaterialRepository,
	repository.ProductionLotRepository,
	repository.ProductionLogRepository,
	repository.WastageRepository,
	repository.CapRepository,
	repository.CounterRepository,
) error) error {
	return fn(r.s.materials, r.s.lots, r.s.logs, r.s.wastages, r.s.caps, r.s.counters)
}

func (r *fakeTxRunner) RunBottle(ctx context.Context, fn func(
	repository.ProductionLotRepository,
	repository.CapRepository,
	repository.LabelRepository,
	repository.RawMaterialRepository,
	repository.ProductRepository,
	repository.BottleProductionRepository,
) error) error {
	return fn(r.s.lots, r.s.caps, r.s.labels, r.s.materials, r.s.products, r.s.bottles)
}

// ── Materia prima ─────────────────────────────────────────────────────────────

type fakeMaterialRepo struct {
	items map[string]*entity.RawMaterial
}

func (r *fakeMaterialRepo) Create(m *entity.RawMaterial) error {
	for _, existing := range r.items {
		if existing.ItemCode == m.ItemCode {
			return domain.ErrDuplicate
		}
	}
	copied := *m
	r.items[m.ID] = &copied
	return nil
}

func (r *fakeMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMaterialRepo) GetByCode(code string) (*entity.RawMaterial, error) {
	for _, m := range r.items {
		if m.ItemCode == code {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	return r.GetByID(id)
}

func (r *fakeMaterialRepo) GetByCodeForUpdate(code string) (*entity.RawMaterial, error) {
	return r.GetByCode(code)
}

func (r *fakeMaterialRepo) UpdateStock(id string, newStock decimal.Decimal) error {
	m, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.CurrentStock = newStock
	return nil
}

func (r *fakeMaterialRepo) Update(m *entity.RawMaterial) error {
	existing, ok := r.items[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stock := existing.CurrentStock
	copied := *m
	copied.CurrentStock = stock
	r.items[m.ID] = &copied
	return nil
}

func (r *fakeMaterialRepo) Deactivate(id string) error {
	m, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.IsActive = false
	return nil
}

func (r *fakeMaterialRepo) List(onlyActive bool) ([]*entity.RawMaterial, error) {
	var out []*entity.RawMaterial
	for _, m := range r.items {
		if onlyActive && !m.IsActive {
			continue
		}
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeMaterialRepo) ListLowStock() ([]*entity.RawMaterial, error) {
	var out []*entity.RawMaterial
	for _, m := range r.items {
		if m.IsActive && m.BelowReorderPoint() {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeMaterialRepo) stock(id string) decimal.Decimal {
	return r.items[id].CurrentStock
}

type fakeEntryRepo struct {
	items []*entity.RawMaterialEntry
}

func (r *fakeEntryRepo) Create(e *entity.RawMaterialEntry) error {
	copied := *e
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeEntryRepo) ListByMaterial(materialID string, limit int) ([]*entity.RawMaterialEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []*entity.RawMaterialEntry
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		if r.items[i].MaterialID == materialID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

type fakeUsageRepo struct {
	items []*entity.DirectUsage
}

func (r *fakeUsageRepo) Create(u *entity.DirectUsage) error {
	copied := *u
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeUsageRepo) List(limit int) ([]*entity.DirectUsage, error) {
	return r.items, nil
}

// ── Mermas ────────────────────────────────────────────────────────────────────

type fakeWastageRepo struct {
	items map[string]*entity.Wastage
	order []string
}

func (r *fakeWastageRepo) Create(w *entity.Wastage) error {
	copied := *w
	r.items[w.ID] = &copied
	r.order = append(r.order, w.ID)
	return nil
}

func (r *fakeWastageRepo) GetByID(id string) (*entity.Wastage, error) {
	w, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *w
	return &copied, nil
}

func (r *fakeWastageRepo) UpdateReuse(w *entity.Wastage) error {
	existing, ok := r.items[w.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.QuantityReused = w.QuantityReused
	existing.QuantityScrapped = w.QuantityScrapped
	existing.ReuseReference = w.ReuseReference
	existing.Remarks = w.Remarks
	return nil
}

func (r *fakeWastageRepo) List(filter repository.WastageFilter) ([]*entity.Wastage, error) {
	var out []*entity.Wastage
	for _, id := range r.order {
		w := r.items[id]
		if filter.Source != "" && w.Source != filter.Source {
			continue
		}
		if filter.Type != "" && w.Type != filter.Type {
			continue
		}
		if !filter.From.IsZero() && w.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && w.Date.After(filter.To) {
			continue
		}
		copied := *w
		out = append(out, &copied)
	}
	return out, nil
}

// ── Lotes y bitácora ──────────────────────────────────────────────────────────

type fakeLotRepo struct {
	items []*entity.ProductionLot
}

func (r *fakeLotRepo) Create(lot *entity.ProductionLot) error {
	copied := *lot
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeLotRepo) GetByID(id string) (*entity.ProductionLot, error) {
	for _, lot := range r.items {
		if lot.ID == id {
			copied := *lot
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeLotRepo) ListByKey(goodType, outcomeKey string) ([]*entity.ProductionLot, error) {
	var out []*entity.ProductionLot
	for _, lot := range r.items {
		if lot.GoodType == goodType && lot.OutcomeKey == outcomeKey {
			copied := *lot
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ProductionDate.Equal(out[j].ProductionDate) {
			return out[i].ProductionDate.Before(out[j].ProductionDate)
		}
		return out[i].LotNo < out[j].LotNo
	})
	return out, nil
}

func (r *fakeLotRepo) ListByKeyForUpdate(goodType, outcomeKey string) ([]*entity.ProductionLot, error) {
	return r.ListByKey(goodType, outcomeKey)
}

func (r *fakeLotRepo) AddConsumed(lotID string, qty decimal.Decimal) error {
	for _, lot := range r.items {
		if lot.ID != lotID {
			continue
		}
		if lot.Available().LessThan(qty) {
			return domain.ErrConflict
		}
		lot.ConsumedQty = lot.ConsumedQty.Add(qty)
		return nil
	}
	return domain.ErrConflict
}

func (r *fakeLotRepo) ListOutcomeKeys(goodType string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, lot := range r.items {
		if lot.GoodType == goodType && !seen[lot.OutcomeKey] {
			seen[lot.OutcomeKey] = true
			out = append(out, lot.OutcomeKey)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeLotRepo) consumed(lotID string) decimal.Decimal {
	for _, lot := range r.items {
		if lot.ID == lotID {
			return lot.ConsumedQty
		}
	}
	return decimal.Zero
}

type fakeLogRepo struct {
	items []*entity.ProductionLog
}

func (r *fakeLogRepo) Create(log *entity.ProductionLog) error {
	copied := *log
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeLogRepo) ListByKey(goodType, outcomeKey string) ([]*entity.ProductionLog, error) {
	var out []*entity.ProductionLog
	for _, log := range r.items {
		if log.GoodType == goodType && log.OutcomeKey == outcomeKey {
			out = append(out, log)
		}
	}
	return out, nil
}

// ── Pools discretos ───────────────────────────────────────────────────────────

type fakeCapRepo struct {
	items map[string]*entity.Cap
}

func (r *fakeCapRepo) Create(c *entity.Cap) error {
	for _, existing := range r.items {
		if existing.NeckType == c.NeckType && existing.Size == c.Size && existing.Color == c.Color {
			return domain.ErrDuplicate
		}
	}
	copied := *c
	r.items[c.ID] = &copied
	return nil
}

func (r *fakeCapRepo) GetByID(id string) (*entity.Cap, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCapRepo) List(onlyActive bool) ([]*entity.Cap, error) {
	var out []*entity.Cap
	for _, c := range r.items {
		if onlyActive && !c.IsActive {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeCapRepo) Deactivate(id string) error {
	c, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.IsActive = false
	return nil
}

func (r *fakeCapRepo) TryDecrement(id string, qty decimal.Decimal, actor string) (decimal.Decimal, error) {
	c, ok := r.items[id]
	if !ok || !c.IsActive {
		return decimal.Zero, domain.ErrNotFound
	}
	if c.QuantityAvailable.LessThan(qty) {
		return decimal.Zero, domain.NewInsufficientStock("cap", c.QuantityAvailable, qty)
	}
	c.QuantityAvailable = c.QuantityAvailable.Sub(qty)
	c.LastUpdatedBy = actor
	return c.QuantityAvailable, nil
}

func (r *fakeCapRepo) Increment(id string, qty decimal.Decimal, actor string) (decimal.Decimal, error) {
	c, ok := r.items[id]
	if !ok || !c.IsActive {
		return decimal.Zero, domain.ErrNotFound
	}
	c.QuantityAvailable = c.QuantityAvailable.Add(qty)
	c.LastUpdatedBy = actor
	return c.QuantityAvailable, nil
}

func (r *fakeCapRepo) SetAvailable(id string, qty decimal.Decimal, actor string) error {
	c, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.QuantityAvailable = qty
	c.LastUpdatedBy = actor
	return nil
}

func (r *fakeCapRepo) available(id string) decimal.Decimal {
	return r.items[id].QuantityAvailable
}

type fakeLabelRepo struct {
	items map[string]*entity.Label
}

func (r *fakeLabelRepo) Create(l *entity.Label) error {
	for _, existing := range r.items {
		if existing.BottleCategory == l.BottleCategory && existing.BottleName == l.BottleName {
			return domain.ErrDuplicate
		}
	}
	copied := *l
	r.items[l.ID] = &copied
	return nil
}

func (r *fakeLabelRepo) GetByID(id string) (*entity.Label, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *l
	return &copied, nil
}

func (r *fakeLabelRepo) List(onlyActive bool) ([]*entity.Label, error) {
	var out []*entity.Label
	for _, l := range r.items {
		if onlyActive && !l.IsActive {
			continue
		}
		copied := *l
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeLabelRepo) Deactivate(id string) error {
	l, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.IsActive = false
	return nil
}

func (r *fakeLabelRepo) TryDecrement(id string, qty decimal.Decimal, actor string) (decimal.Decimal, error) {
	l, ok := r.items[id]
	if !ok || !l.IsActive {
		return decimal.Zero, domain.ErrNotFound
	}
	if l.QuantityAvailable.LessThan(qty) {
		return decimal.Zero, domain.NewInsufficientStock("label", l.QuantityAvailable, qty)
	}
	l.QuantityAvailable = l.QuantityAvailable.Sub(qty)
	l.LastUpdatedBy = actor
	return l.QuantityAvailable, nil
}

func (r *fakeLabelRepo) Increment(id string, qty decimal.Decimal, actor string) (decimal.Decimal, error) {
	l, ok := r.items[id]
	if !ok || !l.IsActive {
		return decimal.Zero, domain.ErrNotFound
	}
	l.QuantityAvailable = l.QuantityAvailable.Add(qty)
	l.LastUpdatedBy = actor
	return l.QuantityAvailable, nil
}

func (r *fakeLabelRepo) SetAvailable(id string, qty decimal.Decimal, actor string) error {
	l, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.QuantityAvailable = qty
	l.LastUpdatedBy = actor
	return nil
}

func (r *fakeLabelRepo) available(id string) decimal.Decimal {
	return r.items[id].QuantityAvailable
}

// ── Producto terminado y corridas ─────────────────────────────────────────────

type fakeProductRepo struct {
	items map[string]*entity.Product
	logs  []*entity.ProductStockLog
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	copied := *p
	r.items[p.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) List(onlyActive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		if onlyActive && !p.IsActive {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeProductRepo) AddBoxes(productID string, log *entity.ProductStockLog) error {
	p, ok := r.items[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Boxes = p.Boxes.Add(log.Boxes)
	copied := *log
	r.logs = append(r.logs, &copied)
	return nil
}

type fakeBottleRepo struct {
	items []*entity.BottleProduction
}

func (r *fakeBottleRepo) Create(rec *entity.BottleProduction) error {
	copied := *rec
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeBottleRepo) GetByID(id string) (*entity.BottleProduction, error) {
	for _, rec := range r.items {
		if rec.ID == id {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBottleRepo) List(limit int) ([]*entity.BottleProduction, error) {
	return r.items, nil
}

type fakeCounterRepo struct {
	values map[string]int64
}

func (r *fakeCounterRepo) Next(name string) (int64, error) {
	r.values[name]++
	return r.values[name], nil
}

// ── Semillas ──────────────────────────────────────────────────────────────────

func seedMaterial(s *memStore, id, name, code string, stock int64) {
	s.materials.items[id] = &entity.RawMaterial{
		ID:           id,
		ItemName:     name,
		ItemCode:     code,
		Unit:         entity.UnitKg,
		CurrentStock: decimal.NewFromInt(stock),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func seedPreformLot(s *memStore, id string, lotNo int64, outcomeKey string, day int, produced int64) {
	s.lots.items = append(s.lots.items, &entity.ProductionLot{
		ID:               id,
		LotNo:            lotNo,
		GoodType:         entity.GoodTypePreform,
		OutcomeKey:       outcomeKey,
		QuantityProduced: decimal.NewFromInt(produced),
		ProductionDate:   time.Date(2026, 5, day, 0, 0, 0, 0, time.UTC),
		RecordedBy:       "seed",
	})
}

func seedCap(s *memStore, id string, qty int64) {
	s.caps.items[id] = &entity.Cap{
		ID:                id,
		NeckType:          entity.NeckNarrow,
		Size:              "28mm",
		Color:             "azul",
		QuantityAvailable: decimal.NewFromInt(qty),
		IsActive:          true,
	}
}

func seedLabel(s *memStore, id string, qty int64) {
	s.labels.items[id] = &entity.Label{
		ID:                id,
		BottleCategory:    "500ml",
		BottleName:        "Reva",
		QuantityAvailable: decimal.NewFromInt(qty),
		IsActive:          true,
	}
}

func seedProduct(s *memStore, id string, bottlesPerBox int) {
	s.products.items[id] = &entity.Product{
		ID:            id,
		Name:          "Reva",
		Category:      "500ml",
		BottlesPerBox: bottlesPerBox,
		Boxes:         decimal.Zero,
		IsActive:      true,
	}
}
