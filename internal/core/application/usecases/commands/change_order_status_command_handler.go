package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles role-scoped order status
// transitions: the order row is locked, ownership is verified, the transition
// validated against the role's table, and the new status persisted.
//
// An order the caller does not own surfaces as errs.ErrObjectNotFound rather
// than a permission error, so callers cannot probe other actors' orders.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition under the order's row lock so racing
// transitions on the same order serialize.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if !actorOwnsOrder(o, cmd.Role(), cmd.ActorID()) {
		return errs.NewObjectNotFoundError("orderNumber", cmd.OrderNumber())
	}

	if err = o.TransitionBy(cmd.Role(), cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// actorOwnsOrder checks whether the acting role is entitled to touch the
// order: customers own their orders, owners their restaurant's orders,
// drivers the orders assigned to them. Admins pass (their transition table is
// empty anyway).
func actorOwnsOrder(o *order.Order, role order.Role, actorID kernel.UUID) bool {
	switch role {
	case order.RoleCustomer:
		return o.CustomerID().IsEqual(actorID)
	case order.RoleRestaurantOwner:
		return o.RestaurantID().IsEqual(actorID)
	case order.RoleDeliveryDriver:
		return o.DriverID() != nil && o.DriverID().IsEqual(actorID)
	case order.RoleAdmin:
		return true
	default:
		return false
	}
}
