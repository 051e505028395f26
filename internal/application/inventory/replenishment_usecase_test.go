package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/vetcarepro/vetstock-api/internal/application/inventory"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

// stubReplRepo solo responde ListBelowReorderPoint; el resto del puerto no se usa.
type stubReplRepo struct {
	repository.InventoryRepository
	items []repository.ReplenishmentItem
}

func (r *stubReplRepo) ListBelowReorderPoint(_ context.Context) ([]repository.ReplenishmentItem, error) {
	return r.items, nil
}

func TestReplenishment_ListaVacia(t *testing.T) {
	uc := appinv.NewReplenishmentUseCase(&stubReplRepo{})
	list, err := uc.GenerateReplenishmentList(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Stock ideal = punto de reorden × 1.5 redondeado arriba; sugerido = ideal − actual.
func TestReplenishment_CalculaCantidadSugerida(t *testing.T) {
	repo := &stubReplRepo{items: []repository.ReplenishmentItem{
		{ProductID: "p1", SKU: "VAC-001", ProductName: "Vacuna canina", CurrentStock: 4, ReorderPoint: 10, Price: decimal.NewFromInt(25000)},
	}}
	uc := appinv.NewReplenishmentUseCase(repo)

	list, err := uc.GenerateReplenishmentList(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	s := list[0]
	assert.Equal(t, 15, s.IdealStock, "ideal = ceil(10 × 1.5)")
	assert.Equal(t, 11, s.SuggestedOrderQty, "sugerido = 15 − 4")
	assert.True(t, decimal.NewFromInt(275000).Equal(s.EstimatedOrderCost),
		"costo estimado = 11 × 25000")
	assert.Equal(t, 1, s.Priority)
}

// Punto de reorden impar: el ideal se redondea hacia arriba.
func TestReplenishment_IdealRedondeaArriba(t *testing.T) {
	repo := &stubReplRepo{items: []repository.ReplenishmentItem{
		{ProductID: "p1", SKU: "A", ProductName: "A", CurrentStock: 0, ReorderPoint: 5, Price: decimal.Zero},
	}}
	uc := appinv.NewReplenishmentUseCase(repo)

	list, err := uc.GenerateReplenishmentList(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 8, list[0].IdealStock, "ceil(5 × 1.5) = 8")
}

// Mayor déficit relativo primero y prioridades 1..n.
func TestReplenishment_OrdenaPorDeficitRelativo(t *testing.T) {
	repo := &stubReplRepo{items: []repository.ReplenishmentItem{
		{ProductID: "leve", SKU: "L", ProductName: "Déficit leve", CurrentStock: 9, ReorderPoint: 10, Price: decimal.Zero},
		{ProductID: "agotado", SKU: "G", ProductName: "Agotado", CurrentStock: 0, ReorderPoint: 10, Price: decimal.Zero},
		{ProductID: "medio", SKU: "M", ProductName: "Déficit medio", CurrentStock: 5, ReorderPoint: 10, Price: decimal.Zero},
	}}
	uc := appinv.NewReplenishmentUseCase(repo)

	list, err := uc.GenerateReplenishmentList(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "agotado", list[0].ProductID)
	assert.Equal(t, "medio", list[1].ProductID)
	assert.Equal(t, "leve", list[2].ProductID)
	for i, s := range list {
		assert.Equal(t, i+1, s.Priority)
	}
}

// El sugerido nunca es negativo aunque el stock supere el ideal.
func TestReplenishment_SugeridoNoNegativo(t *testing.T) {
	repo := &stubReplRepo{items: []repository.ReplenishmentItem{
		{ProductID: "p1", SKU: "A", ProductName: "A", CurrentStock: 20, ReorderPoint: 10, Price: decimal.NewFromInt(100)},
	}}
	uc := appinv.NewReplenishmentUseCase(repo)

	list, err := uc.GenerateReplenishmentList(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 0, list[0].SuggestedOrderQty)
	assert.True(t, list[0].EstimatedOrderCost.IsZero())
}
