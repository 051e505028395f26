package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/vetcarepro/vetstock-api/internal/application/inventory"
	"github.com/vetcarepro/vetstock-api/internal/domain"
	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

// seedQuery deja un inventario con un par de movimientos y devuelve el usecase.
func seedQuery() (*appinv.QueryUseCase, *fakeStore) {
	s := newFakeStore()
	s.inventories[testInvID] = &entity.Inventory{
		ID: testInvID, ProductID: testProductID, Quantity: 10, Status: entity.StatusInStock,
	}
	s.movements = append(s.movements,
		&entity.StockMovement{ID: "m1", InventoryID: testInvID, Type: entity.MovementTypeIN, Quantity: 10},
		&entity.StockMovement{ID: "m2", InventoryID: testInvID, Type: entity.MovementTypeOUT, Quantity: 3},
	)
	return appinv.NewQueryUseCase(&fakeInvRepo{s}, &fakeMovRepo{s}), s
}

func TestListMovements_TipoInvalido(t *testing.T) {
	uc, _ := seedQuery()

	_, _, err := uc.ListMovements(context.Background(), testInvID, repository.MovementFilter{Type: "TRANSFER"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un rango con from posterior a to es un error del request, no una página vacía.
func TestListMovements_RangoInvertido(t *testing.T) {
	uc, _ := seedQuery()

	from := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := uc.ListMovements(context.Background(), testInvID, repository.MovementFilter{From: &from, To: &to})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMovements_RangoValido(t *testing.T) {
	uc, _ := seedQuery()

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	list, total, err := uc.ListMovements(context.Background(), testInvID, repository.MovementFilter{From: &from, To: &to, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)
}

func TestListMovements_InventarioInexistente(t *testing.T) {
	uc, _ := seedQuery()

	_, _, err := uc.ListMovements(context.Background(), "inv-fantasma", repository.MovementFilter{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
