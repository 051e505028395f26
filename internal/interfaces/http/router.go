package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetcarepro/vetstock-api/internal/application/auth"
	"github.com/vetcarepro/vetstock-api/internal/application/inventory"
	"github.com/vetcarepro/vetstock-api/internal/application/usecase"
	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	Ledger        *inventory.LedgerUseCase
	Query         *inventory.QueryUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Report        *inventory.ReportUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
// Las mutaciones de stock y productos requieren rol admin o bodeguero;
// las consultas solo un token válido.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	mutator := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", mutator, productHandler.Create)
	products.Put("/:id", mutator, productHandler.Update)
	products.Delete("/:id", mutator, productHandler.Discontinue)

	// Inventory (protegido). Las rutas fijas van antes que las de :id.
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.Query, deps.Replenishment, deps.Report)
	invGroup.Get("/low-stock", inventoryHandler.ListLowStock)
	invGroup.Get("/dashboard", inventoryHandler.Dashboard)
	invGroup.Get("/replenishment", inventoryHandler.GetReplenishmentList)
	invGroup.Get("/report.pdf", inventoryHandler.StockReport)
	invGroup.Get("/product/:productId", inventoryHandler.GetByProduct)
	invGroup.Get("/:id/movements", inventoryHandler.ListMovements)
	invGroup.Put("/:id", mutator, inventoryHandler.Adjust)
	invGroup.Post("/:id/stock-in", mutator, inventoryHandler.StockIn)
	invGroup.Post("/:id/stock-out", mutator, inventoryHandler.StockOut)
}
