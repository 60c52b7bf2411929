package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler handles driver acceptance of a ready order.
//
// Business rules:
//   - The order must be in ready status
//   - A driver may hold at most one order in picked_up at a time; the count
//     is taken inside the same transaction as the assignment write, so two
//     near-simultaneous accepts by one driver cannot both pass the check
//   - Two drivers racing onto the same ready order serialize on the order's
//     row lock; the loser sees a no-longer-ready order and is rejected
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for driver acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance under the order's row lock.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	active, err := orderRepo.CountActiveDeliveries(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if active > 0 {
		return order.ErrDriverBusy
	}

	if err = o.AcceptByDriver(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
