package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vetcarepro/vetstock-api/internal/domain/entity"
	"github.com/vetcarepro/vetstock-api/internal/domain/inventory"
)

func intPtr(n int) *int { return &n }

// La política de derivación: explícito > cero > umbral > positivo > previo.
func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minLevel *int
		explicit string
		previous string
		want     string
	}{
		{"explícito gana siempre", 100, intPtr(5), entity.StatusDiscontinued, entity.StatusInStock, entity.StatusDiscontinued},
		{"explícito gana incluso con cantidad cero", 0, nil, entity.StatusInStock, entity.StatusOutOfStock, entity.StatusInStock},
		{"cantidad cero", 0, intPtr(5), "", entity.StatusInStock, entity.StatusOutOfStock},
		{"bajo el mínimo", 3, intPtr(5), "", entity.StatusInStock, entity.StatusLowStock},
		{"igual al mínimo no es low stock", 5, intPtr(5), "", entity.StatusLowStock, entity.StatusInStock},
		{"sobre el mínimo", 10, intPtr(5), "", entity.StatusLowStock, entity.StatusInStock},
		{"sin umbral y positivo", 1, nil, "", entity.StatusOutOfStock, entity.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.DeriveStatus(tc.quantity, tc.minLevel, tc.explicit, tc.previous)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMovementTypeForDelta(t *testing.T) {
	assert.Equal(t, entity.MovementTypeIN, inventory.MovementTypeForDelta(5))
	assert.Equal(t, entity.MovementTypeOUT, inventory.MovementTypeForDelta(-3))
	assert.Equal(t, entity.MovementTypeADJUSTMENT, inventory.MovementTypeForDelta(0))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, inventory.ValidStatus(entity.StatusInStock))
	assert.True(t, inventory.ValidStatus(entity.StatusDiscontinued))
	assert.False(t, inventory.ValidStatus("ACTIVO"))
	assert.False(t, inventory.ValidStatus(""))
}
