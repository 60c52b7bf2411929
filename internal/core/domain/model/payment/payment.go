// Package payment implements payment-attempt records for orders. An order may
// accumulate several Payments: failed electronic attempts are retryable, each
// retry producing a new record with a fresh transaction id, so an order is
// never double-counted as paid.
package payment

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment factory method.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Meta carries the method-specific payment details supplied by the customer:
// a wallet phone number for the mobile-wallet methods, the last four card
// digits for card payments. Unused fields stay empty.
type Meta struct {
	PhoneNumber  string
	CardLastFour string
}

// Payment is one settlement attempt against an order: its own status,
// a unique human-readable transaction id, and the method metadata.
type Payment struct {
	id            kernel.UUID
	orderID       kernel.UUID
	customerID    kernel.UUID
	amount        kernel.Money
	method        Method
	status        Status
	transactionID string
	meta          Meta
	isConstructed bool
}

// NewTransactionID generates a unique, method-prefixed transaction id such as
// FD-JC-1A2B3C4D. Ids embed the first eight hex digits of a fresh uuid4.
func NewTransactionID(method Method) string {
	raw := uuid.New()
	return fmt.Sprintf("%s-%X", method.transactionPrefix(), raw[:4])
}

// NewPayment creates a pending payment attempt for an order.
// A transaction id is generated from the method. The attempt stays Pending
// until Complete or Fail records the gateway outcome (cash on delivery stays
// Pending until the handover is confirmed).
func NewPayment(id, orderID, customerID kernel.UUID, amount kernel.Money, method Method, meta Meta) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		customerID.Validate(),
		amount.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		amount:        amount,
		method:        method,
		status:        StatusPending,
		transactionID: NewTransactionID(method),
		meta:          meta,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id, orderID, customerID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	transactionID string,
	meta Meta,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, customerID, amount, method, meta)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.transactionID = transactionID
	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order this attempt settles.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// CustomerID returns the paying customer.
func (p *Payment) CustomerID() kernel.UUID {
	return p.customerID
}

// Amount returns the charged amount, equal to the order's grand total.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns the payment method of this attempt.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the current status of the attempt.
func (p *Payment) Status() Status {
	return p.status
}

// TransactionID returns the unique transaction id.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// Meta returns the method-specific payment details.
func (p *Payment) Meta() Meta {
	return p.meta
}

// Complete marks the attempt as settled. Only pending attempts settle.
func (p *Payment) Complete() error {
	if p.status != StatusPending && p.status != StatusProcessing {
		return fmt.Errorf("payment %s cannot complete from status %s", p.transactionID, p.status)
	}
	p.status = StatusCompleted
	return nil
}

// Fail marks the attempt as declined. Only pending attempts fail.
func (p *Payment) Fail() error {
	if p.status != StatusPending && p.status != StatusProcessing {
		return fmt.Errorf("payment %s cannot fail from status %s", p.transactionID, p.status)
	}
	p.status = StatusFailed
	return nil
}
