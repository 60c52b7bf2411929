package order

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalTransition is the sentinel behind IllegalTransitionError,
	// usable with errors.Is.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrInvalidCancellation is the sentinel behind InvalidCancellationError.
	ErrInvalidCancellation = errors.New("order can only be cancelled when pending or confirmed")

	// ErrDriverBusy is returned when a driver tries to accept an order while
	// already holding one in picked_up status.
	ErrDriverBusy = errors.New("driver already has an active delivery")

	// ErrAlreadyPaid is returned when a payment is attempted against an order
	// whose payment state is already paid.
	ErrAlreadyPaid = errors.New("order has already been paid")
)

// IllegalTransitionError reports a status move the requester's role is not
// entitled to, naming the current and the requested status.
type IllegalTransitionError struct {
	Role Role
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s may not move an order from %s to %s",
		ErrIllegalTransition, e.Role, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// InvalidCancellationError reports a customer cancellation attempted outside
// the pending/confirmed window.
type InvalidCancellationError struct {
	From Status
}

func (e *InvalidCancellationError) Error() string {
	return fmt.Sprintf("%s (current status: %s)", ErrInvalidCancellation, e.From)
}

func (e *InvalidCancellationError) Unwrap() error {
	return ErrInvalidCancellation
}
