package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer's request to cancel their own
// order. Cancellation is only possible while the order is pending or
// confirmed; once the kitchen starts preparing, the order is committed.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	customerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command for a customer to cancel an order.
func NewCancelOrderCommand(orderNumber string, customerID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderNumber returns the order being cancelled.
func (c CancelOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerID returns the cancelling customer.
func (c CancelOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CancelOrderCommand) setOrderNumber(orderNumber string) error {
	if err := order.ValidateNumber(orderNumber); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CancelOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
