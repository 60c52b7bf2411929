// Package ports defines repository and gateway interfaces for the ordering
// engine. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Each customer owns at most one cart, so lookups are keyed by customer.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	// The cart must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate, replacing
	// its full set of lines.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Delete removes a cart and its lines. Deleting an absent cart is not
	// an error: checkout and clear both converge on "no cart".
	Delete(ctx context.Context, id kernel.UUID) error

	// GetByCustomer retrieves the customer's cart.
	// Returns errs.ErrObjectNotFound when the customer has no cart.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// GetByCustomerForUpdate retrieves the customer's cart holding a
	// row-level write lock until the surrounding transaction ends. Used by
	// every cart mutation and by checkout so concurrent requests for the
	// same cart serialize.
	GetByCustomerForUpdate(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// DeleteStale removes carts whose last modification is older than the
	// cutoff. Returns the number of carts removed.
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}
