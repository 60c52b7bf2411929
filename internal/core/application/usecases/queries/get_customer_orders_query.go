package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists the customer's orders, newest first,
// optionally filtered by status.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the customer's order list.
// status is optional; nil means all statuses.
func NewGetCustomerOrdersQuery(customerID kernel.UUID, status *order.Status) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetCustomerOrdersQuery{}, err
		}
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Status returns the optional status filter.
func (q GetCustomerOrdersQuery) Status() *order.Status {
	return q.status
}
