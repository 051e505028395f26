package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vetcarepro/vetstock-api/internal/application/dto"
	"github.com/vetcarepro/vetstock-api/internal/application/inventory"
	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP del libro de stock (protegido).
type InventoryHandler struct {
	ledger        *inventory.LedgerUseCase
	query         *inventory.QueryUseCase
	replenishment *inventory.ReplenishmentUseCase
	report        *inventory.ReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	ledger *inventory.LedgerUseCase,
	query *inventory.QueryUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	report *inventory.ReportUseCase,
) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, query: query, replenishment: replenishment, report: report}
}

// GetByProduct godoc
// @Summary      Inventario de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/product/{productId} [get]
func (h *InventoryHandler) GetByProduct(c *fiber.Ctx) error {
	inv, err := h.query.GetByProduct(c.Context(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryResponse(inv))
}

// Adjust godoc
// @Summary      Ajustar inventario a una cantidad absoluta
// @Description  quantity es el objetivo, no un delta. Un delta distinto de cero
//
//	asienta exactamente un movimiento IN u OUT con referencia
//	MANUAL_ADJUSTMENT; con delta cero solo se actualizan umbrales y status.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "Inventory ID"
// @Param        body  body  dto.AdjustInventoryRequest   true  "quantity, umbrales y status opcionales"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity es requerido"})
	}
	inv, err := h.ledger.Adjust(c.Context(), inventory.AdjustInputDTO{
		InventoryID:    c.Params("id"),
		NewQuantity:    *in.Quantity,
		MinimumLevel:   in.MinimumLevel,
		MaximumLevel:   in.MaximumLevel,
		ReorderPoint:   in.ReorderPoint,
		ExplicitStatus: in.Status,
		Reason:         in.Reason,
		Notes:          in.Notes,
		ActorID:        GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryResponse(inv))
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Inventory ID"
// @Param        body  body  dto.StockOperationRequest  true  "quantity > 0, reason y referencia opcionales"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/stock-in [post]
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	return h.stockOperation(c, h.ledger.StockIn)
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Description  El stock nunca queda negativo: una cantidad mayor al total actual
//
//	falla con INSUFFICIENT_STOCK y no deja rastro.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Inventory ID"
// @Param        body  body  dto.StockOperationRequest  true  "quantity > 0, reason y referencia opcionales"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/stock-out [post]
func (h *InventoryHandler) StockOut(c *fiber.Ctx) error {
	return h.stockOperation(c, h.ledger.StockOut)
}

func (h *InventoryHandler) stockOperation(
	c *fiber.Ctx,
	op func(ctx context.Context, input inventory.StockInputDTO) (*entity.Inventory, error),
) error {
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := op(c.Context(), inventory.StockInputDTO{
		InventoryID:   c.Params("id"),
		Quantity:      in.Quantity,
		Reason:        in.Reason,
		Notes:         in.Notes,
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		ActorID:       GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryResponse(inv))
}

// ListMovements godoc
// @Summary      Historial de movimientos de un inventario
// @Description  Más recientes primero. Filtros opcionales: type (IN | OUT | ADJUSTMENT),
//
//	from y to (RFC3339 o YYYY-MM-DD).
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Inventory ID"
// @Param        type    query  string  false  "IN | OUT | ADJUSTMENT"
// @Param        from    query  string  false  "fecha inicial"
// @Param        to      query  string  false  "fecha final"
// @Param        limit   query  int     false  "máximo de resultados (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()

	filter := repository.MovementFilter{
		Type:   c.Query("type"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	var err error
	if filter.From, err = parseTimeQuery(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339 o YYYY-MM-DD)"})
	}
	if filter.To, err = parseTimeQuery(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339 o YYYY-MM-DD)"})
	}

	movements, total, err := h.query.ListMovements(c.Context(), c.Params("id"), filter)
	if err != nil {
		return respondError(c, err)
	}

	out := dto.MovementListResponse{
		Movements: make([]dto.MovementResponse, 0, len(movements)),
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, m := range movements {
		out.Movements = append(out.Movements, toMovementResponse(m))
	}
	return c.JSON(out)
}

// ListLowStock godoc
// @Summary      Inventarios con stock bajo o agotado
// @Description  Agotados primero, luego stock bajo, cantidad ascendente.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de resultados (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	list, err := h.query.ListLowStock(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInventoryResponse(inv))
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Resumen del inventario
// @Description  Conteos por estado y valorización total a precio de venta.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/inventory/dashboard [get]
func (h *InventoryHandler) Dashboard(c *fiber.Ctx) error {
	s, err := h.query.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DashboardResponse{
		Total:            s.Total,
		InStock:          s.InStock,
		LowStock:         s.LowStock,
		OutOfStock:       s.OutOfStock,
		Discontinued:     s.Discontinued,
		TotalRetailValue: s.TotalRetailValue,
	})
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  SKUs activos en o bajo su punto de reorden con la cantidad
//
//	sugerida de pedido, mayor déficit relativo primero.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}

// StockReport godoc
// @Summary      Reporte de stock en PDF
// @Description  Resumen por estado, valorización y tabla de productos bajo reorden.
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/report.pdf [get]
func (h *InventoryHandler) StockReport(c *fiber.Ctx) error {
	pdfBytes, err := h.report.GenerateStockReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock-report.pdf"`)
	return c.Send(pdfBytes)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func toInventoryResponse(inv *entity.Inventory) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:                inv.ID,
		ProductID:         inv.ProductID,
		Quantity:          inv.Quantity,
		ReservedQuantity:  inv.ReservedQuantity,
		AvailableQuantity: inv.AvailableQuantity,
		MinimumLevel:      inv.MinimumLevel,
		MaximumLevel:      inv.MaximumLevel,
		ReorderPoint:      inv.ReorderPoint,
		Status:            inv.Status,
		LastRestocked:     inv.LastRestocked,
		UpdatedAt:         inv.UpdatedAt,
	}
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		InventoryID:   m.InventoryID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Reason:        m.Reason,
		Notes:         m.Notes,
		PerformedBy:   m.PerformedBy,
		PerformedAt:   m.PerformedAt,
	}
}

// parseTimeQuery acepta RFC3339 o fecha simple YYYY-MM-DD. Vacío devuelve nil.
func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
