package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// ErrBelowMinimumOrder is returned when a cart's subtotal does not reach the
// restaurant's configured minimum order value. Use errors.Is against this
// sentinel; the concrete BelowMinimumOrderError carries the amounts.
var ErrBelowMinimumOrder = errors.New("subtotal is below the restaurant's minimum order")

// BelowMinimumOrderError reports a checkout rejected for not reaching the
// restaurant's minimum order value.
type BelowMinimumOrderError struct {
	Minimum  string
	Subtotal string
}

func (e *BelowMinimumOrderError) Error() string {
	return fmt.Sprintf("subtotal %s is below the restaurant's minimum order %s", e.Subtotal, e.Minimum)
}

func (e *BelowMinimumOrderError) Unwrap() error {
	return ErrBelowMinimumOrder
}

// CheckoutCalculator is a domain service that turns priced order lines into
// the frozen monetary breakdown of an order.
//
// Business rules:
//   - Subtotal is the sum of line unit price times quantity
//   - The subtotal must reach the restaurant's minimum order value
//   - Tax is 5% of the subtotal, rounded to two decimal places
//   - Grand total is subtotal + delivery fee + tax
//
// The resulting breakdown is stored on the order and never recomputed, so a
// later change to the restaurant's fee or the tax rate never touches an
// existing order.
type CheckoutCalculator struct {
	taxRate decimal.Decimal
}

// NewCheckoutCalculator creates a calculator with the standard 5% tax rate.
func NewCheckoutCalculator() CheckoutCalculator {
	return CheckoutCalculator{taxRate: decimal.NewFromFloat(0.05)}
}

// Price computes the order's monetary breakdown from its lines and the
// restaurant's checkout configuration.
//
// Returns a BelowMinimumOrderError when the subtotal does not reach the
// restaurant's minimum order value.
func (c CheckoutCalculator) Price(lines []order.Line, restaurant catalog.Restaurant) (order.Pricing, error) {
	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	if subtotal.IsLessThan(restaurant.MinimumOrder) {
		return order.Pricing{}, &BelowMinimumOrderError{
			Minimum:  restaurant.MinimumOrder.String(),
			Subtotal: subtotal.String(),
		}
	}

	tax := subtotal.ApplyRate(c.taxRate)
	return order.Pricing{
		Subtotal:    subtotal,
		DeliveryFee: restaurant.DeliveryFee,
		Tax:         tax,
		GrandTotal:  subtotal.Add(restaurant.DeliveryFee).Add(tax),
	}, nil
}
