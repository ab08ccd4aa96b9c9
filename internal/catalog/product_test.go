package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/storefront/internal/catalog"
)

func TestStockLifecycle(t *testing.T) {
	p, err := catalog.NewShirt(7, "Oxford", 25, "M", "white", "cotton")
	require.NoError(t, err)

	require.NoError(t, p.IncreaseStock(5))
	assert.Equal(t, catalog.DefaultStock+5, p.Quantity())

	require.NoError(t, p.ReduceStock(catalog.DefaultStock+5))
	assert.Equal(t, 0, p.Quantity())
	assert.True(t, p.IsOutOfStock())

	assert.ErrorIs(t, p.ReduceStock(1), catalog.ErrInsufficientStock)
	assert.True(t, p.IsOutOfStock())
}

func TestStockRejectsNegativeQuantities(t *testing.T) {
	p, err := catalog.NewTable(8, "Dine", 300, "pine", 6)
	require.NoError(t, err)

	assert.ErrorIs(t, p.IncreaseStock(-1), catalog.ErrNegativeQuantity)
	assert.ErrorIs(t, p.ReduceStock(-1), catalog.ErrNegativeQuantity)
	assert.Equal(t, catalog.DefaultStock, p.Quantity())
}

func TestIncreaseStockZeroIsAllowed(t *testing.T) {
	p, err := catalog.NewJeans(9, "501", 60, "32", "indigo", "straight")
	require.NoError(t, err)

	require.NoError(t, p.IncreaseStock(0))
	assert.Equal(t, catalog.DefaultStock, p.Quantity())
}
