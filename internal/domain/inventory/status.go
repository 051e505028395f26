package inventory

import "github.com/vetcarepro/vetstock-api/internal/domain/entity"

// DeriveStatus implementa la política de derivación de estado (servicio de dominio).
// Se aplica igual en toda operación que mute stock; el orden de las ramas es parte
// del contrato:
//
//	explícito > cantidad cero > umbral mínimo > cantidad positiva > estado previo
func DeriveStatus(quantity int, minimumLevel *int, explicitStatus, previousStatus string) string {
	if explicitStatus != "" {
		return explicitStatus
	}
	if quantity == 0 {
		return entity.StatusOutOfStock
	}
	if minimumLevel != nil && quantity < *minimumLevel {
		return entity.StatusLowStock
	}
	if quantity > 0 {
		return entity.StatusInStock
	}
	return previousStatus
}

// MovementTypeForDelta devuelve el tipo de movimiento según el signo del delta.
// Un delta cero no produce movimiento; el caller no debe emitir fila en ese caso.
func MovementTypeForDelta(delta int) string {
	switch {
	case delta > 0:
		return entity.MovementTypeIN
	case delta < 0:
		return entity.MovementTypeOUT
	default:
		return entity.MovementTypeADJUSTMENT
	}
}

// ValidStatus verifica que un estado forzado por el caller sea uno de los conocidos.
func ValidStatus(s string) bool {
	switch s {
	case entity.StatusInStock, entity.StatusLowStock, entity.StatusOutOfStock, entity.StatusDiscontinued:
		return true
	}
	return false
}
