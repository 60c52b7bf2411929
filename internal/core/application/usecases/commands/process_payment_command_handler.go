package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/payment"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// ProcessPaymentCommandHandler handles payment processing for an order.
//
// Business rules:
//   - An already-paid order is rejected with order.ErrAlreadyPaid
//   - Cash on delivery succeeds synchronously: a pending payment record is
//     written and the order stays unpaid until delivery is confirmed
//   - Electronic methods go through the gateway; success writes a completed
//     record and marks the order paid, failure writes a failed record and
//     leaves the order unpaid for a retry
//
// The gateway charge blocks on provider latency, so it runs between two
// transactions: a read to validate the order, the charge with no lock held,
// then a locked transaction that re-validates and records the outcome.
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewProcessPaymentCommandHandler creates a handler for payment processing.
func NewProcessPaymentCommandHandler(uowFactory PaymentUoWFactory, gateway ports.PaymentGateway) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the payment attempt and returns the transaction id of the
// payment record it created.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	amount, err := h.validateOrder(ctx, cmd)
	if err != nil {
		return "", err
	}

	charged := true
	if cmd.Method().IsElectronic() {
		result, chargeErr := h.gateway.Charge(ctx, cmd.Method(), amount, cmd.Meta())
		if chargeErr != nil {
			return "", chargeErr
		}
		charged = result.Succeeded
	}

	return h.recordOutcome(ctx, cmd, amount, charged)
}

// validateOrder checks ownership and the AlreadyPaid guard in a short
// transaction released before the gateway call.
func (h *ProcessPaymentCommandHandler) validateOrder(ctx context.Context, cmd ProcessPaymentCommand) (kernel.Money, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return kernel.Money{}, err
	}

	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return kernel.Money{}, errs.NewObjectNotFoundError("orderNumber", cmd.OrderNumber())
	}
	if o.IsPaid() {
		return kernel.Money{}, order.ErrAlreadyPaid
	}

	return o.Pricing().GrandTotal, nil
}

// recordOutcome writes the payment record and, on success, marks the order
// paid, all under the order's row lock. The paid state is re-checked: if a
// racing attempt settled the order while the gateway was charging, this
// attempt is rejected rather than double-counted.
func (h *ProcessPaymentCommandHandler) recordOutcome(
	ctx context.Context,
	cmd ProcessPaymentCommand,
	amount kernel.Money,
	charged bool,
) (string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByNumberForUpdate(ctx, cmd.OrderNumber())
	if err != nil {
		return "", err
	}
	if o.IsPaid() {
		return "", order.ErrAlreadyPaid
	}

	attempt, err := payment.NewPayment(kernel.NewUUID(), o.ID(), cmd.CustomerID(), amount, cmd.Method(), cmd.Meta())
	if err != nil {
		return "", err
	}

	switch {
	case cmd.Method() == payment.MethodCOD:
		// stays pending until delivery is confirmed
	case charged:
		if err = attempt.Complete(); err != nil {
			return "", err
		}
		if err = o.MarkPaid(); err != nil {
			return "", err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return "", err
		}
	default:
		if err = attempt.Fail(); err != nil {
			return "", err
		}
	}

	if err = uow.PaymentRepository().Add(ctx, attempt); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return attempt.TransactionID(), nil
}
