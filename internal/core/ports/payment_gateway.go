package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/payment"
)

// ChargeResult is the gateway's verdict on a single charge attempt.
type ChargeResult struct {
	// Succeeded reports whether the provider accepted the charge.
	Succeeded bool

	// Reference is the provider-side reference for the attempt, set on
	// both outcomes so failed attempts remain traceable.
	Reference string
}

// PaymentGateway charges a customer through an external payment provider.
//
// Charge blocks for however long the provider takes, so callers must invoke
// it OUTSIDE any database transaction: the charge first, the transactional
// bookkeeping after.
type PaymentGateway interface {
	// Charge attempts to collect the amount via the given method.
	// A declined charge is a successful call with Succeeded=false;
	// the error return is reserved for transport-level failures.
	Charge(ctx context.Context, method payment.Method, amount kernel.Money, meta payment.Meta) (ChargeResult, error)
}
