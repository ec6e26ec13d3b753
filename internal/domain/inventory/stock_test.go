package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/inventory"
)

func TestIsLowStock(t *testing.T) {
	assert.True(t, inventory.IsLowStock(29, inventory.DefaultLowStockLimit))
	assert.False(t, inventory.IsLowStock(30, inventory.DefaultLowStockLimit))
	assert.True(t, inventory.IsLowStock(0, inventory.DefaultLowStockLimit))
}

func TestIncrease(t *testing.T) {
	got, err := inventory.Increase(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, got)

	_, err = inventory.Increase(10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err = inventory.Increase(inventory.MaxStock-1, 1)
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxStock, got)

	got, err = inventory.Increase(inventory.MaxStock-1, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, inventory.MaxStock-1, got, "el stock no cambia si se excede el tope")
}

func TestDecrease(t *testing.T) {
	got, err := inventory.Decrease(10, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = inventory.Decrease(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, got, "vender todo el stock es válido")

	got, err = inventory.Decrease(2, 3)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 2, got, "el stock no cambia si la operación falla")

	_, err = inventory.Decrease(2, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
