package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/review"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a customer rating a delivered order.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	customerID  kernel.UUID
	rating      int
	comment     string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to review a delivered order.
// Rating must lie within [review.MinRating, review.MaxRating].
func NewSubmitReviewCommand(orderNumber string, customerID kernel.UUID, rating int, comment string) (SubmitReviewCommand, error) {
	cmd := SubmitReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setCustomerID(customerID),
		cmd.setRating(rating),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	cmd.comment = comment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// OrderNumber returns the order being reviewed.
func (c SubmitReviewCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerID returns the reviewing customer.
func (c SubmitReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-text comment.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}

func (c *SubmitReviewCommand) setOrderNumber(orderNumber string) error {
	if err := order.ValidateNumber(orderNumber); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *SubmitReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitReviewCommand) setRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating)
	}

	c.rating = rating
	return nil
}
