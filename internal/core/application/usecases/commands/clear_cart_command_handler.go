package commands

import (
	"context"
	"errors"

	"foodcourt/internal/pkg/errs"
)

// ClearCartCommandHandler handles unconditional cart deletion.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the customer's cart. A customer without a cart already has
// what they asked for, so the absent case succeeds.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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
	if errors.Is(err, errs.ErrObjectNotFound) {
		return uow.Commit(ctx)
	}
	if err != nil {
		return err
	}

	if err = cartRepo.Delete(ctx, customerCart.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
