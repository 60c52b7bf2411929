package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrUpdateCartLineCommandIsNotConstructed = errors.New(
		"UpdateCartLineCommand must be created via NewUpdateCartLineCommand constructor",
	)
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// UpdateCartLineCommand represents a request to change a cart line's quantity.
// Quantity zero removes the line; removing the last line deletes the cart.
type UpdateCartLineCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	lineID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartLineCommand creates a command to change a cart line's quantity.
// Quantity zero is valid and removes the line; negative quantities are rejected.
func NewUpdateCartLineCommand(customerID, lineID kernel.UUID, quantity int) (UpdateCartLineCommand, error) {
	cmd := UpdateCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLineID(lineID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartLineCommandIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c UpdateCartLineCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// LineID returns the cart line being updated.
func (c UpdateCartLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the new quantity, zero meaning removal.
func (c UpdateCartLineCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartLineCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCartLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *UpdateCartLineCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}
