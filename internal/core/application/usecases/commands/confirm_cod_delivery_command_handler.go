package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/payment"
	"foodcourt/internal/pkg/errs"
)

// ConfirmCODDeliveryCommandHandler settles a delivered cash-on-delivery
// order: the pending payment record (created if the customer never called
// the payment endpoint) completes and the order is marked paid.
//
// Only the assigned driver can confirm; the order must be delivered, COD,
// and not already paid.
type ConfirmCODDeliveryCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewConfirmCODDeliveryCommandHandler creates a handler for COD settlement.
func NewConfirmCODDeliveryCommandHandler(uowFactory PaymentUoWFactory) ConfirmCODDeliveryCommandHandler {
	return ConfirmCODDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation under the order's row lock.
func (h *ConfirmCODDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmCODDeliveryCommand) error {
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

	if o.DriverID() == nil || !o.DriverID().IsEqual(cmd.DriverID()) {
		return errs.NewObjectNotFoundError("orderNumber", cmd.OrderNumber())
	}
	if o.PaymentMethod() != payment.MethodCOD {
		return ErrOrderIsNotCOD
	}
	if o.Status() != order.StatusDelivered {
		return ErrOrderIsNotDelivered
	}

	if err = o.MarkPaid(); err != nil {
		return err
	}

	paymentRepo := uow.PaymentRepository()
	attempt, err := paymentRepo.GetLatestByOrder(ctx, o.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		attempt, err = payment.NewPayment(
			kernel.NewUUID(), o.ID(), o.CustomerID(),
			o.Pricing().GrandTotal, payment.MethodCOD, payment.Meta{},
		)
		if err != nil {
			return err
		}
		if err = attempt.Complete(); err != nil {
			return err
		}
		if err = paymentRepo.Add(ctx, attempt); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = attempt.Complete(); err != nil {
			return err
		}
		if err = paymentRepo.Update(ctx, attempt); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
