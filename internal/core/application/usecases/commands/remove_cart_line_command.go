package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

// RemoveCartLineCommand represents a request to drop a line from the
// customer's cart. Removing the last line deletes the cart.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	lineID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartLineCommand creates a command to remove a cart line.
func NewRemoveCartLineCommand(customerID, lineID kernel.UUID) (RemoveCartLineCommand, error) {
	cmd := RemoveCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLineID(lineID),
	); err != nil {
		return RemoveCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c RemoveCartLineCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// LineID returns the cart line being removed.
func (c RemoveCartLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *RemoveCartLineCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveCartLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
