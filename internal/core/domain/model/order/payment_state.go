package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// PaymentState is the order-level view of whether the order has been settled.
// It is distinct from the status of individual payment attempts: electronic
// checkouts start paid, cash-on-delivery checkouts stay pending until the
// driver confirms the handover, and failed gateway attempts leave it pending.
type PaymentState int

const (
	// PaymentStateUnknown represents an invalid or undefined state.
	PaymentStateUnknown PaymentState = iota

	// PaymentStatePending means the order still awaits settlement.
	PaymentStatePending

	// PaymentStatePaid means the order has been settled exactly once.
	PaymentStatePaid

	// PaymentStateRefunded means a settled order was returned to the customer.
	PaymentStateRefunded
)

func getPaymentStateStrings() map[PaymentState]string {
	return map[PaymentState]string{
		PaymentStateUnknown:  "unknown",
		PaymentStatePending:  "pending",
		PaymentStatePaid:     "paid",
		PaymentStateRefunded: "refunded",
	}
}

func getValidPaymentStateStrings() map[PaymentState]string {
	//nolint:exhaustive // PaymentStateUnknown is intentionally excluded as it's invalid
	return map[PaymentState]string{
		PaymentStatePending:  "pending",
		PaymentStatePaid:     "paid",
		PaymentStateRefunded: "refunded",
	}
}

// PaymentStateFromString parses a persistence representation of the state.
func PaymentStateFromString(s string) (PaymentState, error) {
	for st, str := range getValidPaymentStateStrings() {
		if str == s {
			return st, nil
		}
	}
	return PaymentStateUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment state",
		fmt.Errorf("%q is not a valid payment state", s),
	)
}

// Validate checks if the PaymentState value is valid.
func (s PaymentState) Validate() error {
	if _, ok := getValidPaymentStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment state",
			fmt.Errorf("%d is not a valid payment state", s),
		)
	}
	return nil
}

// String returns the persistence name of the state.
// This method implements the fmt.Stringer interface.
func (s PaymentState) String() string {
	if str, ok := getPaymentStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}
