package commands

import (
	"context"
)

// RemoveCartLineCommandHandler handles dropping a single cart line, deleting
// the cart itself when the last line goes.
type RemoveCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartLineCommandHandler creates a handler for cart line removal.
func NewRemoveCartLineCommandHandler(uowFactory CartUoWFactory) RemoveCartLineCommandHandler {
	return RemoveCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal under the customer's cart row lock.
func (h *RemoveCartLineCommandHandler) Handle(ctx context.Context, cmd RemoveCartLineCommand) error {
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

	if err = customerCart.RemoveLine(cmd.LineID()); err != nil {
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
