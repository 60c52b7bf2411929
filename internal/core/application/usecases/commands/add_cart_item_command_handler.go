package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// AddCartItemCommandHandler handles the business logic for adding items to a cart.
//
// Business rules:
//   - The item must currently be available
//   - A cart is created on the first add when the customer has none
//   - All lines in a cart reference the cart's restaurant; adding from a
//     different restaurant is rejected with the conflicting restaurant's name
//   - Adding an item already in the cart merges quantities
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for add-to-cart operations.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command. The customer's cart row is locked
// for the duration of the transaction so concurrent adds serialize.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	item, err := uow.CatalogRepository().GetMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}
	if !item.IsAvailable {
		return &catalog.ItemUnavailableError{Name: item.Name}
	}

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomerForUpdate(ctx, cmd.CustomerID())

	isNewCart := false
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrObjectNotFound):
		isNewCart = true
		customerCart, err = cart.NewCart(kernel.NewUUID(), cmd.CustomerID(), item.RestaurantID)
		if err != nil {
			return err
		}
	default:
		return err
	}

	if !customerCart.RestaurantID().IsEqual(item.RestaurantID) {
		conflicting, err := uow.CatalogRepository().GetRestaurant(ctx, customerCart.RestaurantID())
		if err != nil {
			return err
		}
		return &cart.RestaurantConflictError{
			RestaurantID:   conflicting.ID,
			RestaurantName: conflicting.Name,
		}
	}

	if err = customerCart.AddItem(kernel.NewUUID(), item.ID, item.RestaurantID, cmd.Quantity(), cmd.Instructions()); err != nil {
		return err
	}

	if isNewCart {
		err = cartRepo.Add(ctx, customerCart)
	} else {
		err = cartRepo.Update(ctx, customerCart)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
