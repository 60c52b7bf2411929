package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func mustLine(t *testing.T, quantity int, unitPrice string) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), quantity, mustMoney(t, unitPrice), "")
	require.NoError(t, err)
	return line
}

func testRestaurant(t *testing.T, minimumOrder string) catalog.Restaurant {
	t.Helper()
	return catalog.Restaurant{
		ID:           kernel.NewUUID(),
		Name:         "Karachi Biryani House",
		City:         "Lahore",
		DeliveryFee:  mustMoney(t, "100.00"),
		MinimumOrder: mustMoney(t, minimumOrder),
	}
}

func Test_CheckoutCalculator_Price(t *testing.T) {
	calculator := NewCheckoutCalculator()

	// 1 x 300 + 2 x 250 = 800, fee 100, tax 5% = 40, grand 940
	lines := []order.Line{
		mustLine(t, 1, "300.00"),
		mustLine(t, 2, "250.00"),
	}

	pricing, err := calculator.Price(lines, testRestaurant(t, "500.00"))
	require.NoError(t, err)

	assert.Equal(t, "800.00", pricing.Subtotal.String())
	assert.Equal(t, "100.00", pricing.DeliveryFee.String())
	assert.Equal(t, "40.00", pricing.Tax.String())
	assert.Equal(t, "940.00", pricing.GrandTotal.String())
	assert.NoError(t, pricing.Validate())
}

func Test_CheckoutCalculator_RoundsTax(t *testing.T) {
	calculator := NewCheckoutCalculator()

	// 3 x 166.33 = 498.99, 5% = 24.9495, rounds to 24.95
	pricing, err := calculator.Price(
		[]order.Line{mustLine(t, 3, "166.33")},
		testRestaurant(t, "0.00"),
	)
	require.NoError(t, err)

	assert.Equal(t, "24.95", pricing.Tax.String())
	assert.Equal(t, "623.94", pricing.GrandTotal.String())
}

func Test_CheckoutCalculator_MidpointTaxRoundsHalfToEven(t *testing.T) {
	calculator := NewCheckoutCalculator()

	// 250.50 * 5% = 12.525, half-to-even gives 12.52
	pricing, err := calculator.Price(
		[]order.Line{mustLine(t, 1, "250.50")},
		testRestaurant(t, "0.00"),
	)
	require.NoError(t, err)

	assert.Equal(t, "12.52", pricing.Tax.String())
	assert.Equal(t, "363.02", pricing.GrandTotal.String())
}

func Test_CheckoutCalculator_BelowMinimumOrder(t *testing.T) {
	calculator := NewCheckoutCalculator()

	_, err := calculator.Price(
		[]order.Line{mustLine(t, 1, "300.00")},
		testRestaurant(t, "500.00"),
	)

	require.ErrorIs(t, err, ErrBelowMinimumOrder)

	var belowMinimum *BelowMinimumOrderError
	require.ErrorAs(t, err, &belowMinimum)
	assert.Equal(t, "500.00", belowMinimum.Minimum)
	assert.Equal(t, "300.00", belowMinimum.Subtotal)
}

func Test_CheckoutCalculator_SubtotalAtMinimumPasses(t *testing.T) {
	calculator := NewCheckoutCalculator()

	_, err := calculator.Price(
		[]order.Line{mustLine(t, 1, "500.00")},
		testRestaurant(t, "500.00"),
	)

	assert.NoError(t, err)
}
