package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vetcarepro/vetstock-api/internal/domain"
	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
	domaininv "github.com/vetcarepro/vetstock-api/internal/domain/inventory"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

// LedgerUseCase es el motor del libro de stock: mantiene las cantidades
// (total, reservada, disponible), deriva el estado y registra cada cambio de
// cantidad como un movimiento inmutable con saldos antes/después.
//
// Toda mutación corre dentro de una transacción con bloqueo de fila
// (SELECT FOR UPDATE), de modo que el guard de stock insuficiente y los
// saldos del movimiento no sufren condiciones de carrera.
type LedgerUseCase struct {
	txRunner TxRunner
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner}
}

// AdjustInputDTO entrada para Adjust. NewQuantity es el objetivo absoluto.
// Umbrales nil conservan el valor actual; ExplicitStatus vacío deriva el estado.
type AdjustInputDTO struct {
	InventoryID    string
	NewQuantity    int
	MinimumLevel   *int
	MaximumLevel   *int
	ReorderPoint   *int
	ExplicitStatus string
	Reason         string
	Notes          string
	ActorID        string
}

// StockInputDTO entrada para StockIn y StockOut. Quantity es magnitud (> 0).
type StockInputDTO struct {
	InventoryID   string
	Quantity      int
	Reason        string
	Notes         string
	ReferenceType string
	ReferenceID   string
	ActorID       string
}

// Adjust reconcilia el inventario contra una cantidad absoluta (corrección manual).
// Con delta cero actualiza umbrales/estado sin emitir movimiento; con delta
// distinto de cero emite exactamente un movimiento IN u OUT con los saldos
// antes/después. LastRestocked solo se actualiza cuando el delta es positivo.
func (uc *LedgerUseCase) Adjust(ctx context.Context, input AdjustInputDTO) (*entity.Inventory, error) {
	if input.NewQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.ExplicitStatus != "" && !domaininv.ValidStatus(input.ExplicitStatus) {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		inv, err := invRepo.GetForUpdate(input.InventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		// La cantidad nunca puede quedar por debajo de lo reservado
		if input.NewQuantity < inv.ReservedQuantity {
			return domain.ErrInvalidInput
		}

		now := time.Now()
		delta := input.NewQuantity - inv.Quantity
		balanceBefore := inv.Quantity

		if input.MinimumLevel != nil {
			inv.MinimumLevel = input.MinimumLevel
		}
		if input.MaximumLevel != nil {
			inv.MaximumLevel = input.MaximumLevel
		}
		if input.ReorderPoint != nil {
			inv.ReorderPoint = input.ReorderPoint
		}

		inv.Quantity = input.NewQuantity
		inv.AvailableQuantity = inv.Available()
		inv.Status = domaininv.DeriveStatus(inv.Quantity, inv.MinimumLevel, input.ExplicitStatus, inv.Status)
		inv.UpdatedAt = now
		if delta > 0 {
			inv.LastRestocked = &now
		}

		if err := invRepo.Update(inv); err != nil {
			return err
		}
		if err := productRepo.UpdateStatus(inv.ProductID, inv.Status); err != nil {
			return err
		}
		if delta != 0 {
			mov := &entity.StockMovement{
				ID:            uuid.New().String(),
				InventoryID:   inv.ID,
				Type:          domaininv.MovementTypeForDelta(delta),
				Quantity:      abs(delta),
				BalanceBefore: balanceBefore,
				BalanceAfter:  inv.Quantity,
				ReferenceType: entity.ReferenceManualAdjustment,
				Reason:        input.Reason,
				Notes:         input.Notes,
				PerformedBy:   input.ActorID,
				PerformedAt:   now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// StockIn registra una entrada de stock (restock). Siempre emite un movimiento
// IN y actualiza LastRestocked.
func (uc *LedgerUseCase) StockIn(ctx context.Context, input StockInputDTO) (*entity.Inventory, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		inv, err := invRepo.GetForUpdate(input.InventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		balanceBefore := inv.Quantity
		inv.Quantity += input.Quantity
		inv.AvailableQuantity = inv.Available()
		inv.Status = domaininv.DeriveStatus(inv.Quantity, inv.MinimumLevel, "", inv.Status)
		inv.LastRestocked = &now
		inv.UpdatedAt = now

		if err := invRepo.Update(inv); err != nil {
			return err
		}
		if err := productRepo.UpdateStatus(inv.ProductID, inv.Status); err != nil {
			return err
		}
		if err := movRepo.Create(uc.movement(inv, entity.MovementTypeIN, input, balanceBefore, now)); err != nil {
			return err
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// StockOut registra una salida de stock. El stock nunca queda negativo ni por
// debajo de lo reservado: una cantidad mayor al disponible (cantidad menos
// reserva) falla con ErrInsufficientStock y no deja rastro (la transacción se
// revierte completa).
func (uc *LedgerUseCase) StockOut(ctx context.Context, input StockInputDTO) (*entity.Inventory, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		inv, err := invRepo.GetForUpdate(input.InventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		// El saldo gastable es el disponible: una salida nunca invade la reserva
		// ni deja la cantidad por debajo de lo reservado.
		if input.Quantity > inv.Quantity-inv.ReservedQuantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		balanceBefore := inv.Quantity
		inv.Quantity -= input.Quantity
		inv.AvailableQuantity = inv.Available()
		inv.Status = domaininv.DeriveStatus(inv.Quantity, inv.MinimumLevel, "", inv.Status)
		inv.UpdatedAt = now

		if err := invRepo.Update(inv); err != nil {
			return err
		}
		if err := productRepo.UpdateStatus(inv.ProductID, inv.Status); err != nil {
			return err
		}
		if err := movRepo.Create(uc.movement(inv, entity.MovementTypeOUT, input, balanceBefore, now)); err != nil {
			return err
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// movement arma la fila del libro para StockIn/StockOut.
func (uc *LedgerUseCase) movement(inv *entity.Inventory, movType string, input StockInputDTO, balanceBefore int, now time.Time) *entity.StockMovement {
	return &entity.StockMovement{
		ID:            uuid.New().String(),
		InventoryID:   inv.ID,
		Type:          movType,
		Quantity:      input.Quantity,
		BalanceBefore: balanceBefore,
		BalanceAfter:  inv.Quantity,
		ReferenceType: input.ReferenceType,
		ReferenceID:   input.ReferenceID,
		Reason:        input.Reason,
		Notes:         input.Notes,
		PerformedBy:   input.ActorID,
		PerformedAt:   now,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
