package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are addressed by their human-readable number everywhere outside the
// database; the UUID primary key never leaves the persistence layer's joins.
type OrderRepository interface {
	// Add persists a new order aggregate with its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Lines and pricing are immutable after creation; only status, driver
	// and payment state are written back.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order by its order number.
	// Returns errs.ErrObjectNotFound when no order carries the number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetByNumberForUpdate retrieves an order by number holding a
	// row-level write lock until the surrounding transaction ends. Every
	// status transition and payment write goes through this lock.
	GetByNumberForUpdate(ctx context.Context, number string) (*order.Order, error)

	// CountActiveDeliveries returns how many orders the driver currently
	// has in picked_up status. Used under the order row lock to enforce
	// one active delivery per driver.
	CountActiveDeliveries(ctx context.Context, driverID kernel.UUID) (int64, error)
}
