package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// El inventario se crea en la misma transacción; InitialQuantity > 0 genera
// un movimiento IN con referencia PRODUCT_CREATION.
type CreateProductRequest struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Attributes      json.RawMessage `json:"attributes,omitempty"`
	InitialQuantity int             `json:"initial_quantity,omitempty"`
	MinimumLevel    *int            `json:"minimum_level,omitempty"`
	MaximumLevel    *int            `json:"maximum_level,omitempty"`
	ReorderPoint    *int            `json:"reorder_point,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. No toca cantidades ni status.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Attributes  json.RawMessage  `json:"attributes,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Attributes  json.RawMessage `json:"attributes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse respuesta paginada de GET /api/products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"page"`
}
