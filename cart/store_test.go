package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trexstore/models"
)

func newTestStore(t *testing.T) (*Store, *MemoryPersistence) {
	t.Helper()
	p := NewMemoryPersistence()
	s, err := Load(context.Background(), p, "cart-1")
	require.NoError(t, err)
	return s, p
}

func tshirt(qty int, size string) models.CartLine {
	return models.CartLine{
		ProductID: 1,
		Name:      "ORIGIN T-SHIRT",
		UnitPrice: 29.99,
		Quantity:  qty,
		Size:      size,
	}
}

func TestAddItemMergesBySameKey(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, tshirt(2, "M")))
	require.NoError(t, s.AddItem(ctx, tshirt(3, "M")))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.InDelta(t, 29.99*5, lines[0].LineTotal, 1e-9)
}

func TestAddItemDifferentSizesStayDistinct(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, tshirt(1, "M")))
	require.NoError(t, s.AddItem(ctx, tshirt(1, "L")))

	assert.Len(t, s.Lines(), 2)
}

func TestTotalsAlwaysConsistent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, tshirt(2, "M")))
	require.NoError(t, s.AddItem(ctx, models.CartLine{
		ProductID: 2, Name: "TREX STICKER PACK", UnitPrice: 6, Quantity: 1,
	}))

	sum := s.Summary()
	assert.InDelta(t, 29.99*2+6, sum.CartTotal, 1e-9)
	assert.Equal(t, 3, sum.CartCount)

	require.NoError(t, s.UpdateQuantity(ctx, 1, 1, "M"))
	sum = s.Summary()
	assert.InDelta(t, 29.99+6, sum.CartTotal, 1e-9)
	assert.Equal(t, 2, sum.CartCount)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, tshirt(2, "M")))
	require.NoError(t, s.UpdateQuantity(ctx, 1, 0, "M"))

	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.Summary().CartCount)
}

func TestRemoveItemWithSizeLeavesOtherSizes(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, tshirt(1, "M")))
	require.NoError(t, s.AddItem(ctx, tshirt(1, "L")))
	require.NoError(t, s.RemoveItem(ctx, 1, "M"))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "L", lines[0].Size)
}

func TestRemoveItemWithoutSizeRemovesAllSizes(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, tshirt(1, "M")))
	require.NoError(t, s.AddItem(ctx, tshirt(1, "L")))
	require.NoError(t, s.RemoveItem(ctx, 1, ""))

	assert.Empty(t, s.Lines())
}

func TestCartPersistsAcrossLoads(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, tshirt(2, "M")))

	reloaded, err := Load(ctx, p, "cart-1")
	require.NoError(t, err)
	require.Len(t, reloaded.Lines(), 1)
	assert.Equal(t, 2, reloaded.Lines()[0].Quantity)

	require.NoError(t, reloaded.Clear(ctx))
	again, err := Load(ctx, p, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, again.Lines())
}
