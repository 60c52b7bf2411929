package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/payment"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrDeliveryCityIsRequired    = errors.New("delivery city is required")

	// ErrCartIsEmpty is returned when checkout finds no cart (or no lines)
	// for the customer.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// CheckoutCommand represents a request to convert the customer's cart into an
// order: an immutable snapshot with frozen prices and a fresh order number.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(customerID, "12 Canal Road", "Lahore", payment.MethodCOD, "")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout input: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, calculator)
//	orderNumber, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, commands.ErrCartIsEmpty) {
//	    // nothing to check out
//	    return
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	deliveryAddress string
	deliveryCity    string
	paymentMethod   payment.Method
	instructions    string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to turn the customer's cart into an order.
// Validates the customer ID, the delivery destination, and the payment method.
func NewCheckoutCommand(
	customerID kernel.UUID,
	deliveryAddress, deliveryCity string,
	paymentMethod payment.Method,
	instructions string,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setDeliveryCity(deliveryCity),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	cmd.instructions = instructions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the customer checking out.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryAddress returns the delivery street address.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryCity returns the delivery city.
func (c CheckoutCommand) DeliveryCity() string {
	return c.deliveryCity
}

// PaymentMethod returns the chosen payment method.
func (c CheckoutCommand) PaymentMethod() payment.Method {
	return c.paymentMethod
}

// Instructions returns the optional order-level special instructions.
func (c CheckoutCommand) Instructions() string {
	return c.instructions
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CheckoutCommand) setDeliveryCity(city string) error {
	if city == "" {
		return ErrDeliveryCityIsRequired
	}

	c.deliveryCity = city
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
