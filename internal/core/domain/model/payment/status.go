package payment

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Status is the lifecycle state of a single payment attempt. It is distinct
// from the order's own payment status: an order stays unpaid while failed
// attempts accumulate, and flips to paid only on a completed attempt.
//
// State transitions:
//
//	Pending ──> Completed ──> Refunded
//	   │
//	   └──────> Failed
//
// Processing is reserved for asynchronous gateways and currently unused by
// the simulator, which settles synchronously.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial state; for cash on delivery it holds until
	// the driver confirms the handover.
	StatusPending

	// StatusProcessing marks an in-flight gateway authorization.
	StatusProcessing

	// StatusCompleted marks a settled payment.
	StatusCompleted

	// StatusFailed marks a declined or errored attempt. Failed attempts are
	// retried by creating a fresh Payment, never by reusing this one.
	StatusFailed

	// StatusRefunded marks a completed payment returned to the customer.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusFailed:     "failed",
		StatusRefunded:   "refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusFailed:     "failed",
		StatusRefunded:   "refunded",
	}
}

// StatusFromString parses a persistence representation of a payment status.
func StatusFromString(s string) (Status, error) {
	for st, str := range getValidStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the persistence name of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
