package entity

import "time"

// Estados de inventario. DISCONTINUED solo se asigna de forma explícita
// (descontinuar producto); los demás se derivan de cantidad vs. umbrales.
const (
	StatusInStock      = "IN_STOCK"
	StatusLowStock     = "LOW_STOCK"
	StatusOutOfStock   = "OUT_OF_STOCK"
	StatusDiscontinued = "DISCONTINUED"
)

// Inventory representa el registro de stock de un producto (relación 1:1).
// Se crea junto con el producto y nunca se elimina; descontinuar un producto
// marca Status = DISCONTINUED en lugar de borrar la fila.
//
// AvailableQuantity no es verdad independiente: siempre debe cumplirse
// AvailableQuantity == Quantity - ReservedQuantity después de cada escritura.
type Inventory struct {
	ID                string
	ProductID         string
	Quantity          int // unidades totales en bodega (>= 0)
	ReservedQuantity  int // unidades apartadas para órdenes pendientes (gestionado externamente)
	AvailableQuantity int // derivado: Quantity - ReservedQuantity
	MinimumLevel      *int
	MaximumLevel      *int
	ReorderPoint      *int
	Status            string
	LastRestocked     *time.Time
	UpdatedAt         time.Time
}

// Available recalcula la cantidad disponible a partir de los campos actuales.
func (i *Inventory) Available() int {
	return i.Quantity - i.ReservedQuantity
}
