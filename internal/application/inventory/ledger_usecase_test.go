package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/vetcarepro/vetstock-api/internal/application/inventory"
	"github.com/vetcarepro/vetstock-api/internal/domain"
	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: implementan los puertos de repositorio y el TxRunner.
// El runner toma snapshot antes de fn y lo restaura si fn falla, emulando
// el rollback de la transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	inventories map[string]*entity.Inventory
	products    map[string]*entity.Product
	movements   []*entity.StockMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		inventories: map[string]*entity.Inventory{},
		products:    map[string]*entity.Product{},
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for k, v := range s.inventories {
		c := *v
		cp.inventories[k] = &c
	}
	for k, v := range s.products {
		c := *v
		cp.products[k] = &c
	}
	cp.movements = append([]*entity.StockMovement(nil), s.movements...)
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.inventories = snap.inventories
	s.products = snap.products
	s.movements = snap.movements
}

type fakeInvRepo struct{ s *fakeStore }

func (r *fakeInvRepo) Create(inv *entity.Inventory) error {
	c := *inv
	r.s.inventories[inv.ID] = &c
	return nil
}

func (r *fakeInvRepo) GetByID(id string) (*entity.Inventory, error) {
	if inv, ok := r.s.inventories[id]; ok {
		c := *inv
		return &c, nil
	}
	return nil, nil
}

func (r *fakeInvRepo) GetByProduct(productID string) (*entity.Inventory, error) {
	for _, inv := range r.s.inventories {
		if inv.ProductID == productID {
			c := *inv
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeInvRepo) GetForUpdate(id string) (*entity.Inventory, error) {
	return r.GetByID(id)
}

func (r *fakeInvRepo) Update(inv *entity.Inventory) error {
	c := *inv
	r.s.inventories[inv.ID] = &c
	return nil
}

func (r *fakeInvRepo) ListLowStock(_ context.Context, _, _ int) ([]*entity.Inventory, error) {
	return nil, nil
}

func (r *fakeInvRepo) Summary(_ context.Context) (*repository.InventorySummary, error) {
	return &repository.InventorySummary{}, nil
}

func (r *fakeInvRepo) ListBelowReorderPoint(_ context.Context) ([]repository.ReplenishmentItem, error) {
	return nil, nil
}

type fakeMovRepo struct{ s *fakeStore }

func (r *fakeMovRepo) Create(m *entity.StockMovement) error {
	c := *m
	r.s.movements = append(r.s.movements, &c)
	return nil
}

func (r *fakeMovRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeMovRepo) ListByInventory(_ context.Context, inventoryID string, _ repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.InventoryID == inventoryID {
			c := *m
			list = append(list, &c)
		}
	}
	return list, len(list), nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	c := *p
	r.s.products[p.ID] = &c
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	c := *p
	r.s.products[p.ID] = &c
	return nil
}

func (r *fakeProductRepo) UpdateStatus(productID, status string) error {
	if p, ok := r.s.products[productID]; ok {
		p.Status = status
	}
	return nil
}

func (r *fakeProductRepo) List(_, _ int) ([]*entity.Product, error) { return nil, nil }

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	snap := t.s.snapshot()
	if err := fn(&fakeInvRepo{t.s}, &fakeMovRepo{t.s}, &fakeProductRepo{t.s}); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testInvID     = "inv-1"
	testProductID = "prod-1"
	testActor     = "user-1"
)

func intPtr(n int) *int { return &n }

// seed deja un inventario con su producto en el store y devuelve uc + store.
func seed(quantity, reserved int, minLevel *int) (*appinv.LedgerUseCase, *fakeStore) {
	s := newFakeStore()
	s.products[testProductID] = &entity.Product{ID: testProductID, SKU: "ALIM-001", Name: "Alimento premium perro 10kg", Status: entity.StatusInStock}
	s.inventories[testInvID] = &entity.Inventory{
		ID:                testInvID,
		ProductID:         testProductID,
		Quantity:          quantity,
		ReservedQuantity:  reserved,
		AvailableQuantity: quantity - reserved,
		MinimumLevel:      minLevel,
		Status:            entity.StatusInStock,
	}
	return appinv.NewLedgerUseCase(&fakeTxRunner{s}), s
}

// ──────────────────────────────────────────────────────────────────────────────
// StockIn
// ──────────────────────────────────────────────────────────────────────────────

// Escenario 1 del contrato: 10 en bodega con 2 reservadas, entran 5.
func TestStockIn_SumaYEmiteMovimiento(t *testing.T) {
	uc, s := seed(10, 2, nil)

	inv, err := uc.StockIn(context.Background(), appinv.StockInputDTO{
		InventoryID: testInvID, Quantity: 5, Reason: "compra proveedor", ActorID: testActor,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, inv.Quantity)
	assert.Equal(t, 13, inv.AvailableQuantity, "available = quantity - reserved")
	assert.NotNil(t, inv.LastRestocked, "toda entrada actualiza last_restocked")

	require.Len(t, s.movements, 1)
	mov := s.movements[0]
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.Equal(t, 5, mov.Quantity)
	assert.Equal(t, 10, mov.BalanceBefore)
	assert.Equal(t, 15, mov.BalanceAfter)
	assert.Equal(t, testActor, mov.PerformedBy)
}

// Escenario 3: inventario en cero con mínimo 5, entran 3 → queda LOW_STOCK.
func TestStockIn_DesdeCeroQuedaLowStock(t *testing.T) {
	uc, s := seed(0, 0, intPtr(5))
	s.inventories[testInvID].Status = entity.StatusOutOfStock
	s.products[testProductID].Status = entity.StatusOutOfStock

	inv, err := uc.StockIn(context.Background(), appinv.StockInputDTO{
		InventoryID: testInvID, Quantity: 3, ActorID: testActor,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, inv.Quantity)
	assert.Equal(t, entity.StatusLowStock, inv.Status, "3 < mínimo 5")
	assert.Equal(t, entity.StatusLowStock, s.products[testProductID].Status,
		"el status del producto se propaga en la misma operación")

	require.Len(t, s.movements, 1)
	assert.Equal(t, 0, s.movements[0].BalanceBefore)
	assert.Equal(t, 3, s.movements[0].BalanceAfter)
}

func TestStockIn_CantidadInvalida(t *testing.T) {
	uc, s := seed(10, 0, nil)

	for _, qty := range []int{0, -4} {
		_, err := uc.StockIn(context.Background(), appinv.StockInputDTO{InventoryID: testInvID, Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, s.movements)
}

func TestStockIn_InventarioInexistente(t *testing.T) {
	uc, _ := seed(10, 0, nil)

	_, err := uc.StockIn(context.Background(), appinv.StockInputDTO{InventoryID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockOut
// ──────────────────────────────────────────────────────────────────────────────

// Escenario 2: sacar más de lo que hay falla y no deja rastro.
func TestStockOut_InsuficienteRevierteTodo(t *testing.T) {
	uc, s := seed(15, 2, nil)

	_, err := uc.StockOut(context.Background(), appinv.StockInputDTO{
		InventoryID: testInvID, Quantity: 20, ActorID: testActor,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	inv := s.inventories[testInvID]
	assert.Equal(t, 15, inv.Quantity, "la cantidad no cambia en un fallo")
	assert.Equal(t, 13, inv.AvailableQuantity)
	assert.Empty(t, s.movements, "no se crea movimiento en un fallo")
}

// Escenario 4: la salida agota el stock → OUT_OF_STOCK en inventario y producto.
func TestStockOut_AgotaStock(t *testing.T) {
	uc, s := seed(5, 0, intPtr(5))

	inv, err := uc.StockOut(context.Background(), appinv.StockInputDTO{
		InventoryID: testInvID, Quantity: 5, Reason: "venta mostrador", ActorID: testActor,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, inv.Quantity)
	assert.Equal(t, entity.StatusOutOfStock, inv.Status)
	assert.Equal(t, entity.StatusOutOfStock, s.products[testProductID].Status)
	assert.Nil(t, inv.LastRestocked, "una salida no toca last_restocked")

	require.Len(t, s.movements, 1)
	mov := s.movements[0]
	assert.Equal(t, entity.MovementTypeOUT, mov.Type)
	assert.Equal(t, 5, mov.BalanceBefore)
	assert.Equal(t, 0, mov.BalanceAfter)
}

// Una salida no puede invadir la reserva: con 10 en stock y 8 reservados solo
// hay 2 gastables, pedir 5 falla y el estado queda intacto.
func TestStockOut_NoInvadeReserva(t *testing.T) {
	uc, s := seed(10, 8, nil)

	_, err := uc.StockOut(context.Background(), appinv.StockInputDTO{
		InventoryID: testInvID, Quantity: 5, ActorID: testActor,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	inv := s.inventories[testInvID]
	assert.Equal(t, 10, inv.Quantity, "la cantidad no cambia en un fallo")
	assert.Equal(t, 8, inv.ReservedQuantity)
	assert.Equal(t, 2, inv.AvailableQuantity, "el disponible nunca queda negativo")
	assert.Empty(t, s.movements, "no se crea movimiento en un fallo")
}

// Salir exactamente el disponible es válido: la cantidad queda igual a la reserva.
func TestStockOut_AgotaSoloElDisponible(t *testing.T) {
	uc, s := seed(10, 8, nil)

	inv, err := uc.StockOut(context.Background(), appinv.StockInputDTO{
		InventoryID: testInvID, Quantity: 2, ActorID: testActor,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, inv.Quantity)
	assert.Equal(t, 8, inv.ReservedQuantity)
	assert.Equal(t, 0, inv.AvailableQuantity)
	require.Len(t, s.movements, 1)
	assert.Equal(t, 10, s.movements[0].BalanceBefore)
	assert.Equal(t, 8, s.movements[0].BalanceAfter)
}

func TestStockOut_BajoMinimoQuedaLowStock(t *testing.T) {
	uc, _ := seed(10, 0, intPtr(5))

	inv, err := uc.StockOut(context.Background(), appinv.StockInputDTO{InventoryID: testInvID, Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 3, inv.Quantity)
	assert.Equal(t, entity.StatusLowStock, inv.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_DeltaPositivoEmiteIN(t *testing.T) {
	uc, s := seed(10, 0, nil)

	inv, err := uc.Adjust(context.Background(), appinv.AdjustInputDTO{
		InventoryID: testInvID, NewQuantity: 25, Reason: "conteo físico", ActorID: testActor,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, inv.Quantity)
	assert.NotNil(t, inv.LastRestocked)
	require.Len(t, s.movements, 1)
	mov := s.movements[0]
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.Equal(t, 15, mov.Quantity, "magnitud del delta, siempre positiva")
	assert.Equal(t, entity.ReferenceManualAdjustment, mov.ReferenceType)
}

func TestAdjust_DeltaNegativoEmiteOUT(t *testing.T) {
	uc, s := seed(10, 0, nil)

	inv, err := uc.Adjust(context.Background(), appinv.AdjustInputDTO{
		InventoryID: testInvID, NewQuantity: 4, ActorID: testActor,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, inv.Quantity)
	assert.Nil(t, inv.LastRestocked, "un ajuste a la baja no toca last_restocked")
	require.Len(t, s.movements, 1)
	assert.Equal(t, entity.MovementTypeOUT, s.movements[0].Type)
	assert.Equal(t, 6, s.movements[0].Quantity)
}

// Delta cero: se pueden mover umbrales y estado sin ensuciar el libro.
func TestAdjust_DeltaCeroNoEmiteMovimiento(t *testing.T) {
	uc, s := seed(10, 0, nil)

	inv, err := uc.Adjust(context.Background(), appinv.AdjustInputDTO{
		InventoryID: testInvID, NewQuantity: 10, MinimumLevel: intPtr(20),
	})
	require.NoError(t, err)

	assert.Empty(t, s.movements, "delta cero no emite movimiento")
	require.NotNil(t, inv.MinimumLevel)
	assert.Equal(t, 20, *inv.MinimumLevel)
	assert.Equal(t, entity.StatusLowStock, inv.Status, "el nuevo umbral se aplica a la derivación")
}

func TestAdjust_StatusExplicitoGana(t *testing.T) {
	uc, s := seed(50, 0, intPtr(5))

	inv, err := uc.Adjust(context.Background(), appinv.AdjustInputDTO{
		InventoryID: testInvID, NewQuantity: 50, ExplicitStatus: entity.StatusDiscontinued,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDiscontinued, inv.Status)
	assert.Equal(t, entity.StatusDiscontinued, s.products[testProductID].Status)
	assert.Empty(t, s.movements)
}

func TestAdjust_Invalido(t *testing.T) {
	uc, _ := seed(10, 4, nil)

	cases := []appinv.AdjustInputDTO{
		{InventoryID: testInvID, NewQuantity: -1},                             // negativo
		{InventoryID: testInvID, NewQuantity: 3},                              // por debajo de lo reservado
		{InventoryID: testInvID, NewQuantity: 10, ExplicitStatus: "INVALIDO"}, // estado desconocido
	}
	for _, in := range cases {
		_, err := uc.Adjust(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	_, err := uc.Adjust(context.Background(), appinv.AdjustInputDTO{InventoryID: "no-existe", NewQuantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes sobre secuencias de operaciones
// ──────────────────────────────────────────────────────────────────────────────

// La suma de deltas firmados del libro (IN positivo, OUT negativo) debe igualar
// cantidadFinal - cantidadInicial, y cada movimiento debe reconciliar sus saldos.
func TestLibro_InvarianteDeBalance(t *testing.T) {
	uc, s := seed(10, 2, intPtr(5))
	ctx := context.Background()
	initial := 10

	_, err := uc.StockIn(ctx, appinv.StockInputDTO{InventoryID: testInvID, Quantity: 15})
	require.NoError(t, err)
	_, err = uc.StockOut(ctx, appinv.StockInputDTO{InventoryID: testInvID, Quantity: 8})
	require.NoError(t, err)
	_, err = uc.Adjust(ctx, appinv.AdjustInputDTO{InventoryID: testInvID, NewQuantity: 30})
	require.NoError(t, err)
	_, err = uc.StockOut(ctx, appinv.StockInputDTO{InventoryID: testInvID, Quantity: 99})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	_, err = uc.StockOut(ctx, appinv.StockInputDTO{InventoryID: testInvID, Quantity: 4})
	require.NoError(t, err)

	final := s.inventories[testInvID]
	sum := 0
	for _, m := range s.movements {
		switch m.Type {
		case entity.MovementTypeIN:
			sum += m.Quantity
			assert.Equal(t, m.BalanceBefore+m.Quantity, m.BalanceAfter)
		case entity.MovementTypeOUT:
			sum -= m.Quantity
			assert.Equal(t, m.BalanceBefore-m.Quantity, m.BalanceAfter)
		default:
			t.Fatalf("tipo de movimiento inesperado en el libro: %s", m.Type)
		}
	}
	assert.Equal(t, final.Quantity-initial, sum)
	assert.Equal(t, final.Quantity-final.ReservedQuantity, final.AvailableQuantity)
	assert.Len(t, s.movements, 4, "la operación fallida no dejó movimiento")
}
