package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/payment"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrProcessPaymentCommandIsNotConstructed = errors.New(
		"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
	)
	ErrPhoneNumberIsRequired = errors.New("phone number is required for wallet payments")
	ErrCardNumberIsRequired  = errors.New("card details are required for card payments")
)

// ProcessPaymentCommand represents a customer's request to pay for an order.
// Failed electronic attempts are retryable: each call produces a fresh
// payment record and transaction id.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	customerID  kernel.UUID
	method      payment.Method
	meta        payment.Meta

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to pay for an order.
// Wallet methods require a phone number, card payments the card's last four
// digits; cash on delivery needs no metadata.
func NewProcessPaymentCommand(
	orderNumber string,
	customerID kernel.UUID,
	method payment.Method,
	meta payment.Meta,
) (ProcessPaymentCommand, error) {
	cmd := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setCustomerID(customerID),
		cmd.setMethod(method),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	if err := cmd.setMeta(meta); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// OrderNumber returns the order being paid.
func (c ProcessPaymentCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerID returns the paying customer.
func (c ProcessPaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Method returns the payment method.
func (c ProcessPaymentCommand) Method() payment.Method {
	return c.method
}

// Meta returns the method-specific payment metadata.
func (c ProcessPaymentCommand) Meta() payment.Meta {
	return c.meta
}

func (c *ProcessPaymentCommand) setOrderNumber(orderNumber string) error {
	if err := order.ValidateNumber(orderNumber); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *ProcessPaymentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *ProcessPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *ProcessPaymentCommand) setMeta(meta payment.Meta) error {
	if c.method.IsWallet() && meta.PhoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}
	if c.method == payment.MethodCard && meta.CardLastFour == "" {
		return ErrCardNumberIsRequired
	}

	c.meta = meta
	return nil
}
