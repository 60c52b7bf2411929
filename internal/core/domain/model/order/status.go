package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It is a closed enumeration; which transitions between statuses are legal is
// decided by CanTransition against the role-keyed transition tables.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> ready ──> picked_up ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// Delivered and cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status right after checkout, awaiting the
	// restaurant's confirmation.
	StatusPending

	// StatusConfirmed means the restaurant accepted the order.
	StatusConfirmed

	// StatusPreparing means the kitchen is working on the order.
	StatusPreparing

	// StatusReady means the order awaits driver pickup.
	StatusReady

	// StatusPickedUp means a driver holds the order in transit.
	StatusPickedUp

	// StatusDelivered means the order reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled means the customer withdrew the order before
	// preparation started. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusPickedUp:  "picked_up",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusPickedUp:  "picked_up",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a wire/persistence representation of a status.
// Returns an error for unrecognized input.
func StatusFromString(s string) (Status, error) {
	for st, str := range getValidStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are the seven lifecycle states; StatusUnknown and any other
// values are invalid. Used to vet Status values from external sources
// (database, API) before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persistence/wire name of the status, e.g. "picked_up".
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions can leave the status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
