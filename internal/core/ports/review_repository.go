package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review. Each order can be reviewed at most once;
	// a second review for the same order fails with
	// errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *review.Review) error

	// ExistsForOrder reports whether a review has already been submitted
	// for the order.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// RatingSummary returns the restaurant's review count and rating sum,
	// from which the caller derives the new average.
	RatingSummary(ctx context.Context, restaurantID kernel.UUID) (count int64, sum int64, err error)
}
