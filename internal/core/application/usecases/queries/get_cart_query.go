// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the customer's cart with live prices: every line is
// priced from the menu item's current effective price at read time, since
// carts never store prices.
//
// Example:
//
//	query, err := NewGetCartQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := NewGetCartQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d items, total %s\n", view.ItemCount, view.Total)
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the customer's cart view.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCartQueryResponse is the recomputed cart view. A customer without a
// cart gets the zero-value response, never an error.
type GetCartQueryResponse struct {
	RestaurantID   *kernel.UUID
	RestaurantName string
	Lines          []CartLineView
	Total          decimal.Decimal
	ItemCount      int
}

// CartLineView is a single cart line priced at read time.
type CartLineView struct {
	LineID       kernel.UUID
	MenuItemID   kernel.UUID
	ItemName     string
	Quantity     int
	UnitPrice    decimal.Decimal
	Subtotal     decimal.Decimal
	Instructions string
}
