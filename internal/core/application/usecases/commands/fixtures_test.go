package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/payment"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func testPricing(t *testing.T) order.Pricing {
	t.Helper()
	return order.Pricing{
		Subtotal:    mustMoney(t, "800.00"),
		DeliveryFee: mustMoney(t, "100.00"),
		Tax:         mustMoney(t, "40.00"),
		GrandTotal:  mustMoney(t, "940.00"),
	}
}

// testOrder builds an order owned by customerID in the given status.
func testOrder(t *testing.T, customerID kernel.UUID, method payment.Method, status order.Status) *order.Order {
	t.Helper()

	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, "800.00"), "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewNumber(),
		customerID,
		kernel.NewUUID(),
		[]order.Line{line},
		testPricing(t),
		order.Destination{Address: "12 Canal Road", City: "Lahore"},
		method,
		"",
	)
	require.NoError(t, err)

	if status != order.StatusPending {
		restored, err := order.RestoreOrder(
			o.ID(), o.Number(), o.CustomerID(), o.RestaurantID(), nil,
			status, o.PaymentState(), o.PaymentMethod(),
			o.Lines(), o.Pricing(), o.Destination(), o.Instructions(),
		)
		require.NoError(t, err)
		return restored
	}
	return o
}

// testCart builds a cart for the customer holding one line of the given item.
func testCart(t *testing.T, customerID, restaurantID kernel.UUID, item catalog.MenuItem, quantity int) *cart.Cart {
	t.Helper()

	c, err := cart.NewCart(kernel.NewUUID(), customerID, restaurantID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(kernel.NewUUID(), item.ID, item.RestaurantID, quantity, ""))
	return c
}

// testMenuItem builds an available menu item for the restaurant.
func testMenuItem(t *testing.T, restaurantID kernel.UUID, price string) catalog.MenuItem {
	t.Helper()
	return catalog.MenuItem{
		ID:           kernel.NewUUID(),
		RestaurantID: restaurantID,
		Name:         "Chicken Biryani",
		Price:        mustMoney(t, price),
		IsAvailable:  true,
	}
}

// testRestaurant builds a restaurant with fee 100 and the given minimum.
func testRestaurant(t *testing.T, id kernel.UUID, minimum string) catalog.Restaurant {
	t.Helper()
	return catalog.Restaurant{
		ID:           id,
		Name:         "Karachi Biryani House",
		City:         "Lahore",
		DeliveryFee:  mustMoney(t, "100.00"),
		MinimumOrder: mustMoney(t, minimum),
	}
}
