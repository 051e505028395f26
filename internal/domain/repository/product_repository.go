package repository

import "github.com/vetcarepro/vetstock-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos (DIP).
// Status no se modifica con Update: lo propaga el motor de inventario vía UpdateStatus.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStatus(productID, status string) error
	List(limit, offset int) ([]*entity.Product, error)
}
