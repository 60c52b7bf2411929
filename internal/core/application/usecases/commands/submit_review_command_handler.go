package commands

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/review"
	"foodcourt/internal/pkg/errs"
)

// ErrOrderIsNotReviewable is returned when a review is submitted for an
// order that has not reached delivered status.
var ErrOrderIsNotReviewable = errors.New("only delivered orders can be reviewed")

// SubmitReviewCommandHandler stores a customer's review and recomputes the
// restaurant's rating aggregates in the same transaction, so the average can
// never drift from the stored reviews.
//
// Business rules:
//   - Only the order's customer can review it
//   - The order must be delivered
//   - Each order can be reviewed at most once
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the review and updates the restaurant's average rating and
// review count. The order row is locked so two racing reviews for the same
// order serialize and the second hits the already-exists guard.
func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetByNumberForUpdate(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("orderNumber", cmd.OrderNumber())
	}
	if o.Status() != order.StatusDelivered {
		return ErrOrderIsNotReviewable
	}

	reviewRepo := uow.ReviewRepository()
	exists, err := reviewRepo.ExistsForOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("orderNumber", cmd.OrderNumber())
	}

	newReview, err := review.NewReview(
		kernel.NewUUID(), o.ID(), cmd.CustomerID(), o.RestaurantID(),
		cmd.Rating(), cmd.Comment(),
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, newReview); err != nil {
		return err
	}

	count, sum, err := reviewRepo.RatingSummary(ctx, o.RestaurantID())
	if err != nil {
		return err
	}

	average := decimal.Zero
	if count > 0 {
		average = decimal.NewFromInt(sum).
			Div(decimal.NewFromInt(count)).
			Round(2)
	}

	if err = uow.CatalogRepository().UpdateRestaurantRating(ctx, o.RestaurantID(), average, count); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
