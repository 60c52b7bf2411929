package cart

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created through
	// the NewCart factory method. This ensures all carts are properly validated.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrRestaurantConflict is the sentinel behind RestaurantConflictError,
	// usable with errors.Is.
	ErrRestaurantConflict = errors.New("cart holds items from a different restaurant")
)

// RestaurantConflictError reports an attempt to add an item from a restaurant
// other than the one the cart already holds. It carries the identity of the
// restaurant currently locked into the cart so callers can tell the customer
// whose items are in the way.
type RestaurantConflictError struct {
	RestaurantID   kernel.UUID
	RestaurantName string
}

func (e *RestaurantConflictError) Error() string {
	if e.RestaurantName != "" {
		return fmt.Sprintf("%s: %s", ErrRestaurantConflict, e.RestaurantName)
	}
	return ErrRestaurantConflict.Error()
}

func (e *RestaurantConflictError) Unwrap() error {
	return ErrRestaurantConflict
}

// Cart is the per-customer staging area for a single restaurant's items.
// It is the aggregate root guarding two invariants:
//   - every line references the same restaurant as the cart;
//   - every line carries a positive quantity.
//
// A cart holds no prices. Unit prices are resolved live from the catalog at
// read and checkout time, so a cart never goes stale when the menu changes.
//
// Lifecycle: created on the first add-to-cart, deleted when its last line is
// removed or when it is converted into an order.
type Cart struct {
	// id is the unique identifier for the cart
	id kernel.UUID

	// customerID identifies the sole owner of the cart
	customerID kernel.UUID

	// restaurantID is the restaurant every line must belong to
	restaurantID kernel.UUID

	// lines holds the cart contents in insertion order
	lines []Line

	// isConstructed ensures the cart was created via NewCart or RestoreCart
	isConstructed bool
}

// Line is a single cart entry: a menu item reference, a positive quantity,
// and optional per-line preparation instructions.
type Line struct {
	id           kernel.UUID
	menuItemID   kernel.UUID
	quantity     int
	instructions string
}

// NewLine creates a validated cart line.
func NewLine(id, menuItemID kernel.UUID, quantity int, instructions string) (Line, error) {
	if err := errors.Join(id.Validate(), menuItemID.Validate()); err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Line{
		id:           id,
		menuItemID:   menuItemID,
		quantity:     quantity,
		instructions: instructions,
	}, nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// MenuItemID returns the referenced catalog item.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the ordered quantity, always >= 1.
func (l Line) Quantity() int {
	return l.quantity
}

// Instructions returns the per-line preparation instructions, possibly empty.
func (l Line) Instructions() string {
	return l.instructions
}

// NewCart creates an empty cart for a customer and restaurant.
func NewCart(id, customerID, restaurantID kernel.UUID) (*Cart, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Cart{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence, including its lines.
// Used by repositories when rehydrating aggregates from the database.
func RestoreCart(id, customerID, restaurantID kernel.UUID, lines []Line) (*Cart, error) {
	cart, err := NewCart(id, customerID, restaurantID)
	if err != nil {
		return nil, err
	}

	cart.lines = append(cart.lines, lines...)
	return cart, nil
}

// Validate ensures the Cart instance was properly constructed through a
// factory method, preventing use of zero-value aggregates.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// CustomerID returns the owning customer.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the cart is locked to.
func (c *Cart) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount returns the sum of all line quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.quantity
	}
	return count
}

// AddItem puts a menu item into the cart.
//
// Business rules:
//   - the item must belong to the cart's restaurant, otherwise a
//     RestaurantConflictError is returned and the cart is left unchanged;
//   - if a line for the same menu item already exists the quantities merge
//     and non-empty instructions replace the previous ones;
//   - otherwise a new line with the given lineID is appended.
//
// The quantity must be positive.
func (c *Cart) AddItem(lineID, menuItemID, itemRestaurantID kernel.UUID, quantity int, instructions string) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if !itemRestaurantID.IsEqual(c.restaurantID) {
		return &RestaurantConflictError{RestaurantID: c.restaurantID}
	}

	for i := range c.lines {
		if c.lines[i].menuItemID.IsEqual(menuItemID) {
			c.lines[i].quantity += quantity
			if instructions != "" {
				c.lines[i].instructions = instructions
			}
			return nil
		}
	}

	line, err := NewLine(lineID, menuItemID, quantity, instructions)
	if err != nil {
		return err
	}

	c.lines = append(c.lines, line)
	return nil
}

// SetLineQuantity changes the quantity of an existing line.
// A quantity of zero removes the line. Negative quantities are rejected.
// Returns an ObjectNotFoundError if the line is not part of this cart.
func (c *Cart) SetLineQuantity(lineID kernel.UUID, quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	for i := range c.lines {
		if c.lines[i].id.IsEqual(lineID) {
			if quantity == 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].quantity = quantity
			}
			return nil
		}
	}

	return errs.NewObjectNotFoundError("cart line", lineID.String())
}

// RemoveLine deletes a line from the cart.
// Returns an ObjectNotFoundError if the line is not part of this cart.
func (c *Cart) RemoveLine(lineID kernel.UUID) error {
	return c.SetLineQuantity(lineID, 0)
}
