package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vetcarepro/vetstock-api/internal/application/dto"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición: SKUs activos cuyo stock
// está en o bajo su punto de reorden, con la cantidad sugerida de pedido.
type ReplenishmentUseCase struct {
	invRepo repository.InventoryRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(invRepo repository.InventoryRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{invRepo: invRepo}
}

// GenerateReplenishmentList devuelve las sugerencias ordenadas por déficit
// relativo (qué tan por debajo del punto de reorden está el SKU) y les asigna
// prioridad 1..n. Stock ideal = punto de reorden × 1.5, redondeado hacia arriba.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	rawItems, err := uc.invRepo.ListBelowReorderPoint(ctx)
	if err != nil {
		return nil, err
	}
	if len(rawItems) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(rawItems))
	for _, item := range rawItems {
		idealStock := (item.ReorderPoint*3 + 1) / 2 // ceil(reorder * 1.5)
		suggestedQty := idealStock - item.CurrentStock
		if suggestedQty < 0 {
			suggestedQty = 0
		}
		estimatedCost := item.Price.Mul(decimal.NewFromInt(int64(suggestedQty)))

		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          item.ProductID,
			SKU:                item.SKU,
			ProductName:        item.ProductName,
			CurrentStock:       item.CurrentStock,
			ReorderPoint:       item.ReorderPoint,
			IdealStock:         idealStock,
			SuggestedOrderQty:  suggestedQty,
			EstimatedOrderCost: estimatedCost,
		})
	}

	// Mayor déficit relativo primero; empate por déficit absoluto.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		defA := a.ReorderPoint - a.CurrentStock
		defB := b.ReorderPoint - b.CurrentStock
		relA := float64(defA) / float64(max(a.ReorderPoint, 1))
		relB := float64(defB) / float64(max(b.ReorderPoint, 1))
		if relA != relB {
			return relA > relB
		}
		return defA > defB
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
