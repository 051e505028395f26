package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, product_id, quantity, reserved_quantity, available_quantity,
	minimum_level, maximum_level, reorder_point, status, last_restocked, updated_at`

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un registro de inventario (se llama una sola vez, junto al producto).
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, product_id, quantity, reserved_quantity, available_quantity,
			minimum_level, maximum_level, reorder_point, status, last_restocked, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.Quantity, inv.ReservedQuantity, inv.AvailableQuantity,
		inv.MinimumLevel, inv.MaximumLevel, inv.ReorderPoint, inv.Status, inv.LastRestocked, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert inventory: el producto ya tiene inventario: %w", err)
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un inventario por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory")
}

// GetByProduct obtiene el inventario de un producto (relación 1:1).
func (r *InventoryRepo) GetByProduct(productID string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE product_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID), "get inventory by product")
}

// GetForUpdate obtiene el inventario y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción del TxRunner.
func (r *InventoryRepo) GetForUpdate(id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory for update")
}

// Update persiste cantidades, umbrales y estado de un inventario existente.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventories SET quantity = $2, reserved_quantity = $3, available_quantity = $4,
			minimum_level = $5, maximum_level = $6, reorder_point = $7, status = $8,
			last_restocked = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Quantity, inv.ReservedQuantity, inv.AvailableQuantity,
		inv.MinimumLevel, inv.MaximumLevel, inv.ReorderPoint, inv.Status,
		inv.LastRestocked, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update inventory: fila inexistente %s", inv.ID)
	}
	return nil
}

// ListLowStock devuelve inventarios LOW_STOCK y OUT_OF_STOCK ordenados por
// severidad (agotados primero) y luego cantidad ascendente.
func (r *InventoryRepo) ListLowStock(ctx context.Context, limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventories
		WHERE status IN ($1, $2)
		ORDER BY CASE status WHEN $2 THEN 0 ELSE 1 END, quantity ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, entity.StatusLowStock, entity.StatusOutOfStock, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := scanInventory(rows, &inv); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Summary cuenta inventarios por estado y calcula la valorización a precio de venta.
func (r *InventoryRepo) Summary(ctx context.Context) (*repository.InventorySummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE i.status = 'IN_STOCK'),
			COUNT(*) FILTER (WHERE i.status = 'LOW_STOCK'),
			COUNT(*) FILTER (WHERE i.status = 'OUT_OF_STOCK'),
			COUNT(*) FILTER (WHERE i.status = 'DISCONTINUED'),
			COALESCE(SUM(i.quantity * p.price), 0)
		FROM inventories i
		JOIN products p ON p.id = i.product_id`
	var s repository.InventorySummary
	err := r.q.QueryRow(ctx, query).Scan(
		&s.Total, &s.InStock, &s.LowStock, &s.OutOfStock, &s.Discontinued, &s.TotalRetailValue,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory summary: %w", err)
	}
	return &s, nil
}

// ListBelowReorderPoint devuelve productos activos con stock en o bajo su punto
// de reorden, mayor déficit primero.
func (r *InventoryRepo) ListBelowReorderPoint(ctx context.Context) ([]repository.ReplenishmentItem, error) {
	query := `
		SELECT p.id, p.sku, p.name, i.quantity, i.reorder_point, p.price
		FROM inventories i
		JOIN products p ON p.id = i.product_id
		WHERE i.reorder_point IS NOT NULL
		  AND i.quantity <= i.reorder_point
		  AND i.status <> $1
		ORDER BY (i.reorder_point - i.quantity) DESC`
	rows, err := r.q.Query(ctx, query, entity.StatusDiscontinued)
	if err != nil {
		return nil, fmt.Errorf("list below reorder point: %w", err)
	}
	defer rows.Close()
	var items []repository.ReplenishmentItem
	for rows.Next() {
		var it repository.ReplenishmentItem
		if err := rows.Scan(&it.ProductID, &it.SKU, &it.ProductName, &it.CurrentStock, &it.ReorderPoint, &it.Price); err != nil {
			return nil, fmt.Errorf("scan replenishment item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.Inventory, error) {
	var inv entity.Inventory
	if err := scanInventory(row, &inv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}

func scanInventory(row pgx.Row, inv *entity.Inventory) error {
	return row.Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.ReservedQuantity, &inv.AvailableQuantity,
		&inv.MinimumLevel, &inv.MaximumLevel, &inv.ReorderPoint, &inv.Status,
		&inv.LastRestocked, &inv.UpdatedAt,
	)
}
