package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vetcarepro/vetstock-api/internal/application/dto"
	"github.com/vetcarepro/vetstock-api/internal/application/inventory"
	"github.com/vetcarepro/vetstock-api/internal/domain"
	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
	domaininv "github.com/vetcarepro/vetstock-api/internal/domain/inventory"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

// ProductUseCase casos de uso de catálogo. Un producto nace siempre con su
// registro de inventario en la misma transacción: no puede existir producto
// sin inventario. Cantidades y status se mueven solo vía el motor de inventario.
type ProductUseCase struct {
	txRunner    inventory.TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner inventory.TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create crea producto + inventario atómicamente. Una cantidad inicial > 0
// queda asentada en el libro como movimiento IN con referencia PRODUCT_CREATION.
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Price.LessThan(decimal.Zero) || in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if invalidThreshold(in.MinimumLevel) || invalidThreshold(in.MaximumLevel) || invalidThreshold(in.ReorderPoint) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.productRepo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	status := domaininv.DeriveStatus(in.InitialQuantity, in.MinimumLevel, "", entity.StatusOutOfStock)

	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Status:      status,
		Attributes:  in.Attributes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	inv := &entity.Inventory{
		ID:                uuid.New().String(),
		ProductID:         product.ID,
		Quantity:          in.InitialQuantity,
		ReservedQuantity:  0,
		AvailableQuantity: in.InitialQuantity,
		MinimumLevel:      in.MinimumLevel,
		MaximumLevel:      in.MaximumLevel,
		ReorderPoint:      in.ReorderPoint,
		Status:            status,
		UpdatedAt:         now,
	}
	if in.InitialQuantity > 0 {
		inv.LastRestocked = &now
	}

	err := uc.txRunner.Run(ctx, func(
		txInvRepo repository.InventoryRepository,
		txMovRepo repository.StockMovementRepository,
		txProductRepo repository.ProductRepository,
	) error {
		if err := txProductRepo.Create(product); err != nil {
			return err
		}
		if err := txInvRepo.Create(inv); err != nil {
			return err
		}
		if in.InitialQuantity > 0 {
			return txMovRepo.Create(&entity.StockMovement{
				ID:            uuid.New().String(),
				InventoryID:   inv.ID,
				Type:          entity.MovementTypeIN,
				Quantity:      in.InitialQuantity,
				BalanceBefore: 0,
				BalanceAfter:  in.InitialQuantity,
				ReferenceType: entity.ReferenceProductCreation,
				ReferenceID:   product.ID,
				Reason:        "stock inicial",
				PerformedBy:   actorID,
				PerformedAt:   now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza datos comerciales del producto. No toca cantidades ni status.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if len(in.Attributes) > 0 {
		product.Attributes = in.Attributes
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Discontinue marca producto e inventario como DISCONTINUED en una transacción.
// Las filas nunca se eliminan: el libro de movimientos conserva su historia.
func (uc *ProductUseCase) Discontinue(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		txInvRepo repository.InventoryRepository,
		_ repository.StockMovementRepository,
		txProductRepo repository.ProductRepository,
	) error {
		product, err := txProductRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		inv, err := txInvRepo.GetByProduct(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		inv, err = txInvRepo.GetForUpdate(inv.ID)
		if err != nil {
			return err
		}
		inv.Status = entity.StatusDiscontinued
		inv.UpdatedAt = time.Now()
		if err := txInvRepo.Update(inv); err != nil {
			return err
		}
		return txProductRepo.UpdateStatus(id, entity.StatusDiscontinued)
	})
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(list)),
		Page:     dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range list {
		resp.Products = append(resp.Products, *toProductResponse(p))
	}
	return resp, nil
}

func invalidThreshold(v *int) bool { return v != nil && *v < 0 }

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Status:      p.Status,
		Attributes:  p.Attributes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
