package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada (restock)
	MovementTypeOUT        = "OUT"        // salida (venta, merma)
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual
)

// Tipos de referencia usados por las operaciones del sistema.
const (
	ReferenceManualAdjustment = "MANUAL_ADJUSTMENT"
	ReferenceProductCreation  = "PRODUCT_CREATION"
)

// StockMovement es una entrada del libro de movimientos (append-only).
// Quantity es siempre positivo; la dirección la da Type. BalanceBefore y
// BalanceAfter son fotos de Inventory.Quantity al momento del movimiento:
// BalanceAfter - BalanceBefore == ±Quantity según Type. Una vez creado,
// un movimiento nunca se edita ni se elimina.
type StockMovement struct {
	ID            string
	InventoryID   string
	Type          string
	Quantity      int
	BalanceBefore int
	BalanceAfter  int
	ReferenceType string
	ReferenceID   string
	Reason        string
	Notes         string
	PerformedBy   string // UserID del actor (lo aporta el middleware de auth)
	PerformedAt   time.Time
}
