package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, inventory_id, type, quantity, balance_before, balance_after,
	reference_type, reference_id, reason, notes, performed_by, performed_at`

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). El puerto no expone UPDATE ni DELETE: el libro es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create asienta un movimiento en el libro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, inventory_id, type, quantity, balance_before, balance_after,
			reference_type, reference_id, reason, notes, performed_by, performed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	performedBy := (*string)(nil)
	if movement.PerformedBy != "" {
		performedBy = &movement.PerformedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.InventoryID, movement.Type, movement.Quantity,
		movement.BalanceBefore, movement.BalanceAfter,
		movement.ReferenceType, movement.ReferenceID, movement.Reason, movement.Notes,
		performedBy, movement.PerformedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	if err := scanMovement(r.q.QueryRow(context.Background(), query, id), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByInventory lista movimientos de un inventario, más recientes primero,
// con filtro opcional por tipo y rango de fechas. Devuelve además el total sin paginar.
func (r *StockMovementRepo) ListByInventory(ctx context.Context, inventoryID string, f repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	where := ` WHERE inventory_id = $1`
	args := []any{inventoryID}
	pos := 2
	if f.Type != "" {
		where += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, f.Type)
		pos++
	}
	if f.From != nil {
		where += fmt.Sprintf(" AND performed_at >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		where += fmt.Sprintf(" AND performed_at <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query := `SELECT ` + movementColumns + ` FROM stock_movements` + where +
		fmt.Sprintf(" ORDER BY performed_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := scanMovement(rows, &m); err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}

func scanMovement(row pgx.Row, m *entity.StockMovement) error {
	var performedBy *string
	err := row.Scan(
		&m.ID, &m.InventoryID, &m.Type, &m.Quantity, &m.BalanceBefore, &m.BalanceAfter,
		&m.ReferenceType, &m.ReferenceID, &m.Reason, &m.Notes, &performedBy, &m.PerformedAt,
	)
	if err != nil {
		return err
	}
	if performedBy != nil {
		m.PerformedBy = *performedBy
	}
	return nil
}
