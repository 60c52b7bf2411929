package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a driver's request to take a ready order:
// the order moves to picked_up and the driver is assigned in the same write.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	driverID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a driver to accept an order.
func NewAcceptOrderCommand(orderNumber string, driverID kernel.UUID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setDriverID(driverID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderNumber returns the order being accepted.
func (c AcceptOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// DriverID returns the accepting driver.
func (c AcceptOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AcceptOrderCommand) setOrderNumber(orderNumber string) error {
	if err := order.ValidateNumber(orderNumber); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *AcceptOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
