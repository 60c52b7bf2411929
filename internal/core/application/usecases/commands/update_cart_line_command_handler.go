package commands

import (
	"context"
)

// UpdateCartLineCommandHandler handles cart line quantity changes, including
// the empty-cart cleanup rule: when the last line goes, the cart goes with it.
type UpdateCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartLineCommandHandler creates a handler for cart line updates.
func NewUpdateCartLineCommandHandler(uowFactory CartUoWFactory) UpdateCartLineCommandHandler {
	return UpdateCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change under the customer's cart row lock.
// A line outside the caller's cart surfaces as errs.ErrObjectNotFound.
func (h *UpdateCartLineCommandHandler) Handle(ctx context.Context, cmd UpdateCartLineCommand) error {
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

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomerForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customerCart.SetLineQuantity(cmd.LineID(), cmd.Quantity()); err != nil {
		return err
	}

	if customerCart.IsEmpty() {
		err = cartRepo.Delete(ctx, customerCart.ID())
	} else {
		err = cartRepo.Update(ctx, customerCart)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
