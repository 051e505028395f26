package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustInventoryRequest body para PUT /api/inventory/:id.
// Quantity es el objetivo absoluto (no un delta). Los umbrales y el status
// son opcionales; un status presente fuerza el estado sin derivación.
type AdjustInventoryRequest struct {
	Quantity     *int   `json:"quantity"`
	MinimumLevel *int   `json:"minimum_level,omitempty"`
	MaximumLevel *int   `json:"maximum_level,omitempty"`
	ReorderPoint *int   `json:"reorder_point,omitempty"`
	Status       string `json:"status,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// StockOperationRequest body para POST /api/inventory/:id/stock-in y /stock-out.
type StockOperationRequest struct {
	Quantity      int    `json:"quantity"`
	Reason        string `json:"reason,omitempty"`
	Notes         string `json:"notes,omitempty"`
	ReferenceType string `json:"reference_type,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`
}

// InventoryResponse representación HTTP de un registro de inventario.
type InventoryResponse struct {
	ID                string     `json:"id"`
	ProductID         string     `json:"product_id"`
	Quantity          int        `json:"quantity"`
	ReservedQuantity  int        `json:"reserved_quantity"`
	AvailableQuantity int        `json:"available_quantity"`
	MinimumLevel      *int       `json:"minimum_level,omitempty"`
	MaximumLevel      *int       `json:"maximum_level,omitempty"`
	ReorderPoint      *int       `json:"reorder_point,omitempty"`
	Status            string     `json:"status"`
	LastRestocked     *time.Time `json:"last_restocked,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// MovementResponse representación HTTP de un movimiento del libro.
type MovementResponse struct {
	ID            string    `json:"id"`
	InventoryID   string    `json:"inventory_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	BalanceBefore int       `json:"balance_before"`
	BalanceAfter  int       `json:"balance_after"`
	ReferenceType string    `json:"reference_type,omitempty"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	PerformedBy   string    `json:"performed_by,omitempty"`
	PerformedAt   time.Time `json:"performed_at"`
}

// MovementListResponse respuesta paginada de GET /api/inventory/:id/movements.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Page      PageResponse       `json:"page"`
}

// DashboardResponse respuesta de GET /api/inventory/dashboard.
type DashboardResponse struct {
	Total            int             `json:"total"`
	InStock          int             `json:"in_stock"`
	LowStock         int             `json:"low_stock"`
	OutOfStock       int             `json:"out_of_stock"`
	Discontinued     int             `json:"discontinued"`
	TotalRetailValue decimal.Decimal `json:"total_retail_value"` // Σ quantity × price
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un SKU en o bajo su punto de reorden.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"product_id"`
	SKU                string          `json:"sku"`
	ProductName        string          `json:"product_name"`
	CurrentStock       int             `json:"current_stock"`
	ReorderPoint       int             `json:"reorder_point"`
	IdealStock         int             `json:"ideal_stock"`          // ReorderPoint * 1.5, redondeado arriba
	SuggestedOrderQty  int             `json:"suggested_order_qty"`  // IdealStock - CurrentStock
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty × precio
	Priority           int             `json:"priority"`             // 1 = más urgente
}
