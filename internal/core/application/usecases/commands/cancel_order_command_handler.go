package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer cancellation. Only the owning
// customer can cancel, and only from pending or confirmed; other states
// surface order.ErrInvalidCancellation.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation under the order's row lock, so a racing
// restaurant confirmation and a cancellation serialize.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByNumberForUpdate(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("orderNumber", cmd.OrderNumber())
	}

	if err = o.TransitionBy(order.RoleCustomer, order.StatusCancelled); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
