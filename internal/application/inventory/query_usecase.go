package inventory

import (
	"context"

	"github.com/vetcarepro/vetstock-api/internal/domain"
	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre inventario y movimientos.
// No requiere transacción: cada consulta es una foto consistente.
type QueryUseCase struct {
	invRepo repository.InventoryRepository
	movRepo repository.StockMovementRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(invRepo repository.InventoryRepository, movRepo repository.StockMovementRepository) *QueryUseCase {
	return &QueryUseCase{invRepo: invRepo, movRepo: movRepo}
}

// GetByProduct devuelve el inventario de un producto.
func (uc *QueryUseCase) GetByProduct(ctx context.Context, productID string) (*entity.Inventory, error) {
	inv, err := uc.invRepo.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// ListMovements lista los movimientos de un inventario, más recientes primero,
// con filtro opcional por tipo y rango de fechas. Devuelve el total sin paginar.
func (uc *QueryUseCase) ListMovements(ctx context.Context, inventoryID string, f repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	switch f.Type {
	case "", entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeADJUSTMENT:
	default:
		return nil, 0, domain.ErrInvalidInput
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return nil, 0, domain.ErrInvalidInput
	}
	inv, err := uc.invRepo.GetByID(inventoryID)
	if err != nil {
		return nil, 0, err
	}
	if inv == nil {
		return nil, 0, domain.ErrNotFound
	}
	return uc.movRepo.ListByInventory(ctx, inventoryID, f)
}

// ListLowStock devuelve inventarios en LOW_STOCK u OUT_OF_STOCK, ordenados por
// severidad de estado y luego cantidad ascendente.
func (uc *QueryUseCase) ListLowStock(ctx context.Context, limit, offset int) ([]*entity.Inventory, error) {
	return uc.invRepo.ListLowStock(ctx, limit, offset)
}

// Dashboard devuelve los conteos por estado y la valorización total del inventario.
func (uc *QueryUseCase) Dashboard(ctx context.Context) (*repository.InventorySummary, error) {
	return uc.invRepo.Summary(ctx)
}
