package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
)

// InventorySummary agregado para el dashboard de inventario.
type InventorySummary struct {
	Total            int
	InStock          int
	LowStock         int
	OutOfStock       int
	Discontinued     int
	TotalRetailValue decimal.Decimal // Σ quantity × product.price
}

// ReplenishmentItem resultado crudo del repositorio para un producto en o bajo su punto de reorden.
type ReplenishmentItem struct {
	ProductID    string
	SKU          string
	ProductName  string
	CurrentStock int
	ReorderPoint int
	Price        decimal.Decimal
}

// InventoryRepository define el puerto de persistencia para registros de inventario (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido dentro de una tx.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	GetByProduct(productID string) (*entity.Inventory, error)
	GetForUpdate(id string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error

	// ListLowStock devuelve inventarios LOW_STOCK y OUT_OF_STOCK,
	// ordenados por severidad de estado y luego cantidad ascendente.
	ListLowStock(ctx context.Context, limit, offset int) ([]*entity.Inventory, error)

	// Summary cuenta inventarios por estado y calcula la valorización total a precio de venta.
	Summary(ctx context.Context) (*InventorySummary, error)

	// ListBelowReorderPoint devuelve productos activos con stock <= punto de reorden.
	ListBelowReorderPoint(ctx context.Context) ([]ReplenishmentItem, error)
}
