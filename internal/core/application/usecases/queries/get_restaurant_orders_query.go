package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery lists a restaurant's incoming orders, newest
// first, optionally filtered by status — the kitchen's work board.
type GetRestaurantOrdersQuery struct {
	restaurantID kernel.UUID
	status       *order.Status

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for the restaurant's order board.
func NewGetRestaurantOrdersQuery(restaurantID kernel.UUID, status *order.Status) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetRestaurantOrdersQuery{}, err
		}
	}

	return GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are listed.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Status returns the optional status filter.
func (q GetRestaurantOrdersQuery) Status() *order.Status {
	return q.status
}
