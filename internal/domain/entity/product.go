package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de la tienda veterinaria (alimento, medicamento, accesorio).
// Status se mantiene en espejo con el status del inventario asociado; nunca se edita directo.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // precio de venta
	Status      string          // espejo de Inventory.Status
	Attributes  json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
