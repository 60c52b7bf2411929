package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment attempts.
// Every gateway call produces its own Payment row, so failed attempts stay
// on record next to the one that eventually succeeded.
type PaymentRepository interface {
	// Add persists a new payment attempt.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment attempt.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// GetLatestByOrder retrieves the most recent payment attempt for the
	// order. Returns errs.ErrObjectNotFound when the order has none.
	GetLatestByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
