package repository

import (
	"context"
	"time"

	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos de un inventario.
type MovementFilter struct {
	Type   string // IN, OUT, ADJUSTMENT; vacío = todos
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// StockMovementRepository define el puerto de persistencia para el libro de movimientos (DIP).
// El libro es append-only: no existen operaciones de edición ni borrado.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)

	// ListByInventory lista movimientos del inventario, más recientes primero.
	// Devuelve también el total sin paginar para los metadatos de página.
	ListByInventory(ctx context.Context, inventoryID string, f MovementFilter) ([]*entity.StockMovement, int, error)
}
