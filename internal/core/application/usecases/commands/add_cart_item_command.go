package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to put a menu item into the
// customer's cart, creating the cart on first use.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(customerID, menuItemID, 2, "no onions")
//	if err != nil {
//	    return fmt.Errorf("invalid cart input: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	menuItemID   kernel.UUID
	quantity     int
	instructions string

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to the customer's cart.
// Validates that both IDs are valid and the quantity is positive.
func NewAddCartItemCommand(customerID, menuItemID kernel.UUID, quantity int, instructions string) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	cmd.instructions = instructions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c AddCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// MenuItemID returns the catalog item being added.
func (c AddCartItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the quantity to add, always positive.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// Instructions returns the optional per-line preparation instructions.
func (c AddCartItemCommand) Instructions() string {
	return c.instructions
}

func (c *AddCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddCartItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
