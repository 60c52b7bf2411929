package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail of one of the customer's orders.
// An order the customer does not own surfaces as not found.
type GetOrderQuery struct {
	orderNumber string
	customerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail view.
func NewGetOrderQuery(orderNumber string, customerID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(
		order.ValidateNumber(orderNumber),
		customerID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderNumber: orderNumber,
		customerID:  customerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderNumber returns the requested order.
func (q GetOrderQuery) OrderNumber() string {
	return q.orderNumber
}

// CustomerID returns the requesting customer.
func (q GetOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}
