// Package catalog holds the read-model the ordering engine consumes from the
// catalog collaborator: menu items with their pricing/availability and
// restaurants with their checkout configuration. The engine never mutates
// catalog records except for the review-driven rating aggregates.
package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/kernel"
)

// ErrItemUnavailable is returned when a menu item is not currently orderable.
// Use errors.Is against this sentinel; the concrete ItemUnavailableError
// carries the item's name for display.
var ErrItemUnavailable = errors.New("menu item is not available")

// ItemUnavailableError reports an attempt to order an item the restaurant has
// switched off.
type ItemUnavailableError struct {
	Name string
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("menu item %q is not available", e.Name)
}

func (e *ItemUnavailableError) Unwrap() error {
	return ErrItemUnavailable
}

// MenuItem is a snapshot of an orderable catalog entry.
type MenuItem struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	Name            string
	Price           kernel.Money
	DiscountedPrice *kernel.Money
	IsAvailable     bool
}

// EffectivePrice returns the price a customer actually pays for the item:
// the discounted price when one is set and non-zero, the list price otherwise.
// Cart totals and frozen order prices are both derived from this single
// function so the two can never drift apart.
func (i MenuItem) EffectivePrice() kernel.Money {
	if i.DiscountedPrice != nil && !i.DiscountedPrice.IsZero() {
		return *i.DiscountedPrice
	}
	return i.Price
}

// Restaurant is a snapshot of the checkout-relevant restaurant configuration.
type Restaurant struct {
	ID            kernel.UUID
	Name          string
	City          string
	DeliveryFee   kernel.Money
	MinimumOrder  kernel.Money
	AverageRating decimal.Decimal
	TotalReviews  int64
}
