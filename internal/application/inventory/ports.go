package inventory

import (
	"context"

	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de inventario: leer → validar → actualizar inventario →
// propagar status al producto → insertar movimiento se confirma o revierte como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
