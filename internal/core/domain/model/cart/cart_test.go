package cart_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	t.Run("creates_empty_cart", func(t *testing.T) {
		c := newTestCart(t)

		require.NoError(t, c.Validate())
		assert.True(t, c.IsEmpty())
		assert.Zero(t, c.ItemCount())
	})

	t.Run("rejects_invalid_ids", func(t *testing.T) {
		_, err := cart.NewCart(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var c cart.Cart
		require.ErrorIs(t, c.Validate(), cart.ErrCartIsNotConstructed)
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("appends_new_line", func(t *testing.T) {
		c := newTestCart(t)
		itemID := kernel.NewUUID()

		err := c.AddItem(kernel.NewUUID(), itemID, c.RestaurantID(), 2, "no onions")

		require.NoError(t, err)
		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.True(t, lines[0].MenuItemID().IsEqual(itemID))
		assert.Equal(t, 2, lines[0].Quantity())
		assert.Equal(t, "no onions", lines[0].Instructions())
	})

	t.Run("merges_quantity_for_same_item", func(t *testing.T) {
		c := newTestCart(t)
		itemID := kernel.NewUUID()

		require.NoError(t, c.AddItem(kernel.NewUUID(), itemID, c.RestaurantID(), 1, ""))
		require.NoError(t, c.AddItem(kernel.NewUUID(), itemID, c.RestaurantID(), 3, "extra sauce"))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 4, lines[0].Quantity())
		assert.Equal(t, "extra sauce", lines[0].Instructions())
		assert.Equal(t, 4, c.ItemCount())
	})

	t.Run("rejects_item_from_other_restaurant_and_keeps_cart_unchanged", func(t *testing.T) {
		c := newTestCart(t)
		require.NoError(t, c.AddItem(kernel.NewUUID(), kernel.NewUUID(), c.RestaurantID(), 1, ""))

		err := c.AddItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1, "")

		require.ErrorIs(t, err, cart.ErrRestaurantConflict)
		var conflict *cart.RestaurantConflictError
		require.ErrorAs(t, err, &conflict)
		assert.True(t, conflict.RestaurantID.IsEqual(c.RestaurantID()))
		assert.Equal(t, 1, c.ItemCount())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		c := newTestCart(t)

		err := c.AddItem(kernel.NewUUID(), kernel.NewUUID(), c.RestaurantID(), 0, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, c.IsEmpty())
	})
}

func TestCart_SetLineQuantity(t *testing.T) {
	t.Run("updates_quantity", func(t *testing.T) {
		c := newTestCart(t)
		lineID := kernel.NewUUID()
		require.NoError(t, c.AddItem(lineID, kernel.NewUUID(), c.RestaurantID(), 1, ""))

		require.NoError(t, c.SetLineQuantity(lineID, 5))

		assert.Equal(t, 5, c.Lines()[0].Quantity())
	})

	t.Run("zero_quantity_removes_line", func(t *testing.T) {
		c := newTestCart(t)
		lineID := kernel.NewUUID()
		require.NoError(t, c.AddItem(lineID, kernel.NewUUID(), c.RestaurantID(), 2, ""))

		require.NoError(t, c.SetLineQuantity(lineID, 0))

		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown_line_is_not_found", func(t *testing.T) {
		c := newTestCart(t)

		err := c.SetLineQuantity(kernel.NewUUID(), 1)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("negative_quantity_is_invalid", func(t *testing.T) {
		c := newTestCart(t)
		lineID := kernel.NewUUID()
		require.NoError(t, c.AddItem(lineID, kernel.NewUUID(), c.RestaurantID(), 2, ""))

		err := c.SetLineQuantity(lineID, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 2, c.Lines()[0].Quantity())
	})
}

func TestCart_RemoveLine(t *testing.T) {
	c := newTestCart(t)
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	require.NoError(t, c.AddItem(first, kernel.NewUUID(), c.RestaurantID(), 1, ""))
	require.NoError(t, c.AddItem(second, kernel.NewUUID(), c.RestaurantID(), 2, ""))

	require.NoError(t, c.RemoveLine(first))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].ID().IsEqual(second))
}

func TestRestoreCart(t *testing.T) {
	id, customerID, restaurantID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	line, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), 3, "spicy")
	require.NoError(t, err)

	c, err := cart.RestoreCart(id, customerID, restaurantID, []cart.Line{line})

	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, 3, c.ItemCount())
	assert.True(t, c.ID().IsEqual(id))
}
