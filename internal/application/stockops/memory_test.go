package stockops_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/RestoStock-api/internal/domain"
	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
	"github.com/jhoicas/RestoStock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos. Replican el contrato del store real:
// enqueued_at monótono asignado al insertar, MarkTerminal de una sola vez y
// transacciones con snapshot/rollback para el TxRunner.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu    sync.Mutex
	ops   map[string]*entity.Operation
	cells map[string]*entity.Stock
	base  time.Time
	tick  int
}

func newMemStore() *memStore {
	return &memStore{
		ops:   make(map[string]*entity.Operation),
		cells: make(map[string]*entity.Stock),
		base:  time.Now().Add(-time.Hour),
	}
}

func cellKey(elementID, locationID string) string {
	return elementID + "|" + locationID
}

func copyOp(op *entity.Operation) *entity.Operation {
	c := *op
	if op.ProcessedAt != nil {
		t := *op.ProcessedAt
		c.ProcessedAt = &t
	}
	return &c
}

func copyCell(s *entity.Stock) *entity.Stock {
	c := *s
	return &c
}

// addOp inserta una operación con enqueued_at explícito, para simular
// entradas que llegaron al store en un orden distinto al de inserción.
func (s *memStore) addOp(op *entity.Operation, enqueuedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	op.EnqueuedAt = enqueuedAt
	op.Status = entity.OperationStatusPending
	s.ops[op.ID] = copyOp(op)
}

func (s *memStore) quantity(elementID, locationID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cell, ok := s.cells[cellKey(elementID, locationID)]; ok {
		return cell.Quantity
	}
	return decimal.Zero
}

func (s *memStore) operation(id string) *entity.Operation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if op, ok := s.ops[id]; ok {
		return copyOp(op)
	}
	return nil
}

// snapshot / restore implementan la atomicidad del TxRunner fake.
func (s *memStore) snapshot() (map[string]*entity.Operation, map[string]*entity.Stock) {
	ops := make(map[string]*entity.Operation, len(s.ops))
	for k, v := range s.ops {
		ops[k] = copyOp(v)
	}
	cells := make(map[string]*entity.Stock, len(s.cells))
	for k, v := range s.cells {
		cells[k] = copyCell(v)
	}
	return ops, cells
}

func (s *memStore) restore(ops map[string]*entity.Operation, cells map[string]*entity.Stock) {
	s.ops = ops
	s.cells = cells
}

// ── OperationRepository ──────────────────────────────────────────────────────

type memOpRepo struct{ s *memStore }

var _ repository.OperationRepository = (*memOpRepo)(nil)

func (r *memOpRepo) Create(op *entity.Operation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.ops[op.ID]; exists {
		return domain.ErrDuplicate
	}
	r.s.tick++
	op.EnqueuedAt = r.s.base.Add(time.Duration(r.s.tick) * time.Millisecond)
	op.Status = entity.OperationStatusPending
	r.s.ops[op.ID] = copyOp(op)
	return nil
}

func (r *memOpRepo) GetByID(id string) (*entity.Operation, error) {
	return r.s.operation(id), nil
}

func (r *memOpRepo) ListPending() ([]*entity.Operation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Operation
	for _, op := range r.s.ops {
		if op.Status == entity.OperationStatusPending {
			list = append(list, copyOp(op))
		}
	}
	// Orden de mapa: deliberadamente no determinista; ordenar es
	// responsabilidad del motor.
	return list, nil
}

func (r *memOpRepo) MarkTerminal(id, status string, processedAt time.Time, errMsg string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	op, ok := r.s.ops[id]
	if !ok {
		return fmt.Errorf("%w: operación %s", domain.ErrNotFound, id)
	}
	if op.Status != entity.OperationStatusPending {
		return fmt.Errorf("%w: operación %s ya es %s", domain.ErrAlreadyTerminal, id, op.Status)
	}
	op.Status = status
	op.ProcessedAt = &processedAt
	op.Error = errMsg
	return nil
}

func (r *memOpRepo) DeleteTerminalBefore(cutoff time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var removed int64
	for id, op := range r.s.ops {
		if op.Status == entity.OperationStatusPending {
			continue
		}
		if op.ProcessedAt != nil && op.ProcessedAt.Before(cutoff) {
			delete(r.s.ops, id)
			removed++
		}
	}
	return removed, nil
}

func (r *memOpRepo) ListRecent(limit, offset int) ([]*entity.Operation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Operation
	for _, op := range r.s.ops {
		list = append(list, copyOp(op))
	}
	return list, nil
}

// ── StockRepository ──────────────────────────────────────────────────────────

type memStockRepo struct{ s *memStore }

var _ repository.StockRepository = (*memStockRepo)(nil)

func (r *memStockRepo) Get(elementID, locationID string) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cell, ok := r.s.cells[cellKey(elementID, locationID)]; ok {
		return copyCell(cell), nil
	}
	return &entity.Stock{ElementID: elementID, LocationID: locationID, Quantity: decimal.Zero}, nil
}

func (r *memStockRepo) GetForUpdate(elementID, locationID string) (*entity.Stock, error) {
	return r.Get(elementID, locationID)
}

func (r *memStockRepo) Upsert(stock *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.cells[cellKey(stock.ElementID, stock.LocationID)] = copyCell(stock)
	return nil
}

func (r *memStockRepo) ListByLocation(locationID string) ([]*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Stock
	for _, cell := range r.s.cells {
		if cell.LocationID == locationID {
			list = append(list, copyCell(cell))
		}
	}
	return list, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// memTxRunner ejecuta fn contra el store y, si fn falla, restaura el snapshot
// previo (rollback). conflictsLeft permite simular fallos de serialización
// del store para ejercitar el presupuesto de reintentos del motor.
type memTxRunner struct {
	s             *memStore
	conflictsLeft int
}

func (t *memTxRunner) Run(ctx context.Context, fn func(
	opRepo repository.OperationRepository,
	stockRepo repository.StockRepository,
) error) error {
	t.s.mu.Lock()
	ops, cells := t.s.snapshot()
	t.s.mu.Unlock()

	if err := fn(&memOpRepo{t.s}, &memStockRepo{t.s}); err != nil {
		t.s.mu.Lock()
		t.s.restore(ops, cells)
		t.s.mu.Unlock()
		return err
	}

	if t.conflictsLeft > 0 {
		t.conflictsLeft--
		t.s.mu.Lock()
		t.s.restore(ops, cells)
		t.s.mu.Unlock()
		return fmt.Errorf("%w: commit simulado fallido", domain.ErrTransactionConflict)
	}
	return nil
}

// ── Catálogo ─────────────────────────────────────────────────────────────────

type memElementRepo struct {
	mu       sync.Mutex
	elements map[string]*entity.StockElement
}

var _ repository.StockElementRepository = (*memElementRepo)(nil)

func newMemElementRepo() *memElementRepo {
	return &memElementRepo{elements: make(map[string]*entity.StockElement)}
}

func (r *memElementRepo) put(e *entity.StockElement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elements[e.ID] = e
}

func (r *memElementRepo) Create(e *entity.StockElement) error {
	r.put(e)
	return nil
}

func (r *memElementRepo) GetByID(id string) (*entity.StockElement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.elements[id]; ok {
		c := *e
		return &c, nil
	}
	return nil, nil
}

func (r *memElementRepo) Update(e *entity.StockElement) error {
	r.put(e)
	return nil
}

func (r *memElementRepo) List(limit, offset int) ([]*entity.StockElement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.StockElement
	for _, e := range r.elements {
		c := *e
		list = append(list, &c)
	}
	return list, nil
}

type memLocationRepo struct {
	mu        sync.Mutex
	locations map[string]*entity.Location
}

var _ repository.LocationRepository = (*memLocationRepo)(nil)

func newMemLocationRepo() *memLocationRepo {
	return &memLocationRepo{locations: make(map[string]*entity.Location)}
}

func (r *memLocationRepo) put(l *entity.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations[l.ID] = l
}

func (r *memLocationRepo) Create(l *entity.Location) error {
	r.put(l)
	return nil
}

func (r *memLocationRepo) GetByID(id string) (*entity.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.locations[id]; ok {
		c := *l
		return &c, nil
	}
	return nil, nil
}

func (r *memLocationRepo) Update(l *entity.Location) error {
	r.put(l)
	return nil
}

func (r *memLocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Location
	for _, l := range r.locations {
		c := *l
		list = append(list, &c)
	}
	return list, nil
}
