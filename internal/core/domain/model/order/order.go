package order

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/payment"
	"foodcourt/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Pricing is the frozen monetary breakdown of an order, fixed at creation and
// never recomputed afterwards.
type Pricing struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Tax         kernel.Money
	GrandTotal  kernel.Money
}

// Validate checks the breakdown invariant: every amount non-negative and
// grand total exactly subtotal + delivery fee + tax.
func (p Pricing) Validate() error {
	if err := errors.Join(
		p.Subtotal.Validate(),
		p.DeliveryFee.Validate(),
		p.Tax.Validate(),
		p.GrandTotal.Validate(),
	); err != nil {
		return err
	}

	expected := p.Subtotal.Add(p.DeliveryFee).Add(p.Tax)
	if !p.GrandTotal.IsEqual(expected) {
		return errs.NewValueIsInvalidErrorWithCause(
			"grand total",
			fmt.Errorf("%s does not equal subtotal %s + delivery fee %s + tax %s",
				p.GrandTotal, p.Subtotal, p.DeliveryFee, p.Tax),
		)
	}
	return nil
}

// Destination is where the order is delivered. City also drives which drivers
// see the order once it is ready.
type Destination struct {
	Address string
	City    string
}

// Validate checks that both address and city are present.
func (d Destination) Validate() error {
	if d.Address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if d.City == "" {
		return errs.NewValueIsRequiredError("delivery city")
	}
	return nil
}

// Line is a single order entry with its price frozen at order-creation time.
// Unlike a cart line it owns its unit price: later menu price changes never
// reach an existing order.
type Line struct {
	id           kernel.UUID
	menuItemID   kernel.UUID
	quantity     int
	unitPrice    kernel.Money
	instructions string
}

// NewLine creates a validated order line with a frozen unit price.
func NewLine(id, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money, instructions string) (Line, error) {
	if err := errors.Join(id.Validate(), menuItemID.Validate(), unitPrice.Validate()); err != nil {
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
		unitPrice:    unitPrice,
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

// UnitPrice returns the price frozen at order creation.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Instructions returns the per-line preparation instructions, possibly empty.
func (l Line) Instructions() string {
	return l.instructions
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MultiplyBy(l.quantity)
}

// Order represents a committed purchase in the system. It is the aggregate
// root that manages the order lifecycle from checkout through fulfillment.
//
// Order follows these invariants:
//   - The checkout snapshot (lines, pricing, destination, payment method) is
//     immutable after creation; only status, driver, and payment state change
//   - Status transitions follow the role-keyed transition tables
//   - grand total equals subtotal + delivery fee + tax
//   - Can only be created through the NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-readable unique order number, e.g. FD-1A2B3C4D
	number string

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// restaurantID identifies the fulfilling restaurant
	restaurantID kernel.UUID

	// driverID is the assigned driver's ID (nil until a driver accepts)
	driverID *kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// paymentState is the order-level settlement state
	paymentState PaymentState

	// paymentMethod is how the customer chose to pay at checkout
	paymentMethod payment.Method

	// pricing is the frozen monetary breakdown
	pricing Pricing

	// destination is the delivery address and city
	destination Destination

	// instructions holds optional order-level special instructions
	instructions string

	// lines holds the frozen order lines
	lines []Line

	// isConstructed ensures the order was created via NewOrder/RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order in pending status from a checkout snapshot.
// This is the only way to create a valid Order, ensuring all business
// invariants hold.
//
// The order starts with payment state paid for electronic methods (the
// gateway settles at checkout) and pending for cash on delivery. At least one
// line is required; the pricing breakdown must balance.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID, restaurantID kernel.UUID,
	lines []Line,
	pricing Pricing,
	destination Destination,
	method payment.Method,
	instructions string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		ValidateNumber(number),
		customerID.Validate(),
		restaurantID.Validate(),
		pricing.Validate(),
		destination.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}

	paymentState := PaymentStatePaid
	if method == payment.MethodCOD {
		paymentState = PaymentStatePending
	}

	o := &Order{
		id:            id,
		number:        number,
		customerID:    customerID,
		restaurantID:  restaurantID,
		status:        StatusPending,
		paymentState:  paymentState,
		paymentMethod: method,
		pricing:       pricing,
		destination:   destination,
		instructions:  instructions,
		isConstructed: true,
	}
	o.lines = append(o.lines, lines...)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, bypassing the initial
// state assignment but none of the validation.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID, restaurantID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	paymentState PaymentState,
	method payment.Method,
	lines []Line,
	pricing Pricing,
	destination Destination,
	instructions string,
) (*Order, error) {
	o, err := NewOrder(id, number, customerID, restaurantID, lines, pricing, destination, method, instructions)
	if err != nil {
		return nil, err
	}
	if err := errors.Join(status.Validate(), paymentState.Validate()); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = driverID
	}

	o.status = status
	o.paymentState = paymentState
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder, preventing use of zero-value aggregates.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DriverID returns the assigned driver's ID, nil if no driver accepted yet.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentState returns the order-level settlement state.
func (o *Order) PaymentState() PaymentState {
	return o.paymentState
}

// PaymentMethod returns the method chosen at checkout.
func (o *Order) PaymentMethod() payment.Method {
	return o.paymentMethod
}

// Pricing returns the frozen monetary breakdown.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Destination returns the delivery address and city.
func (o *Order) Destination() Destination {
	return o.destination
}

// Instructions returns the order-level special instructions, possibly empty.
func (o *Order) Instructions() string {
	return o.instructions
}

// Lines returns a copy of the frozen order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// IsPaid reports whether the order has been settled.
func (o *Order) IsPaid() bool {
	return o.paymentState == PaymentStatePaid
}

// TransitionBy moves the order to a new status on behalf of a role.
//
// The move must appear in the role's transition table; anything else fails
// with an IllegalTransitionError naming the current and requested status.
// A customer cancellation outside the pending/confirmed window fails with the
// more specific InvalidCancellationError.
//
// Ownership (owner owns the restaurant, customer owns the order, driver is
// the assigned driver) is checked by the application layer, which knows the
// actors; this method enforces only the role-by-status rules.
func (o *Order) TransitionBy(role Role, to Status) error {
	if err := errors.Join(role.Validate(), to.Validate()); err != nil {
		return err
	}

	if !CanTransition(role, o.status, to) {
		if role == RoleCustomer && to == StatusCancelled {
			return &InvalidCancellationError{From: o.status}
		}
		return &IllegalTransitionError{Role: role, From: o.status, To: to}
	}

	o.status = to
	return nil
}

// AcceptByDriver assigns the order to a driver and moves it to picked_up.
//
// This method enforces the following business rules:
//   - The order must be in ready status
//   - The driver is assigned on first acceptance only; an already-assigned
//     driver is never overwritten
//
// The one-active-delivery-per-driver rule requires knowledge of the driver's
// other orders and is re-validated by the accept handler inside the same
// transaction as this write.
func (o *Order) AcceptByDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if !CanTransition(RoleDeliveryDriver, o.status, StatusPickedUp) {
		return &IllegalTransitionError{Role: RoleDeliveryDriver, From: o.status, To: StatusPickedUp}
	}

	o.status = StatusPickedUp
	if o.driverID == nil {
		o.driverID = &driverID
	}
	return nil
}

// MarkPaid flips the order's payment state to paid.
// Returns ErrAlreadyPaid if the order is already settled, so an order can
// never be double-counted as paid across payment retries.
func (o *Order) MarkPaid() error {
	if o.paymentState == PaymentStatePaid {
		return ErrAlreadyPaid
	}
	o.paymentState = PaymentStatePaid
	return nil
}
