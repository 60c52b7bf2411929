// Package review provides the Review aggregate: a customer's rating of a
// delivered order. Reviews feed the restaurant's rating aggregates, which are
// the only catalog fields the ordering engine writes.
package review

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrReviewIsNotConstructed is returned when a Review instance was not created
// through the NewReview factory method.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Rating bounds for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of a delivered order. A customer can review
// each order at most once; that uniqueness is enforced by the repository,
// the aggregate guards everything it can see on its own.
type Review struct {
	id           kernel.UUID
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	rating       int
	comment      string

	isConstructed bool
}

// NewReview creates a validated review. Rating must lie within
// [MinRating, MaxRating]; the comment is optional.
func NewReview(id, orderID, customerID, restaurantID kernel.UUID, rating int, comment string) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	return &Review{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		restaurantID:  restaurantID,
		rating:        rating,
		comment:       comment,
		isConstructed: true,
	}, nil
}

// RestoreReview reconstructs a review from persistence.
func RestoreReview(id, orderID, customerID, restaurantID kernel.UUID, rating int, comment string) (*Review, error) {
	return NewReview(id, orderID, customerID, restaurantID, rating, comment)
}

// Validate ensures the Review instance was properly constructed through
// NewReview.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// OrderID returns the reviewed order.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// CustomerID returns the reviewing customer.
func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

// RestaurantID returns the reviewed restaurant.
func (r *Review) RestaurantID() kernel.UUID {
	return r.restaurantID
}

// Rating returns the rating, always within [MinRating, MaxRating].
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

// String renders the review for logs.
func (r *Review) String() string {
	return fmt.Sprintf("review %s: order %s rated %d/5", r.id, r.orderID, r.rating)
}
