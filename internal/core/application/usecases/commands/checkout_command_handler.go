package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"
)

// CheckoutCommandHandler handles the cart-to-order transition.
//
// The whole conversion is one transaction: the order and its lines are
// created and the source cart deleted atomically. A failure on any step
// leaves the cart exactly as it was and no partial order behind.
//
// Business rules:
//   - The customer must hold a non-empty cart
//   - Line prices are frozen from the catalog's effective price at this moment
//   - The subtotal must reach the restaurant's minimum order value
//   - Electronic methods start the order paid, cash on delivery starts pending
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	calculator services.CheckoutCalculator
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, calculator services.CheckoutCalculator) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle converts the customer's cart into an order and returns the new
// order's number. The cart row is locked so a concurrent mutation or a second
// checkout serializes behind this one.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomerForUpdate(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", ErrCartIsEmpty
	}
	if err != nil {
		return "", err
	}
	if customerCart.IsEmpty() {
		return "", ErrCartIsEmpty
	}

	lines, err := h.freezeLines(ctx, uow, customerCart.Lines())
	if err != nil {
		return "", err
	}

	restaurant, err := uow.CatalogRepository().GetRestaurant(ctx, customerCart.RestaurantID())
	if err != nil {
		return "", err
	}

	pricing, err := h.calculator.Price(lines, restaurant)
	if err != nil {
		return "", err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewNumber(),
		cmd.CustomerID(),
		customerCart.RestaurantID(),
		lines,
		pricing,
		order.Destination{Address: cmd.DeliveryAddress(), City: cmd.DeliveryCity()},
		cmd.PaymentMethod(),
		cmd.Instructions(),
	)
	if err != nil {
		return "", err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return "", err
	}

	if err = cartRepo.Delete(ctx, customerCart.ID()); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return newOrder.Number(), nil
}

// freezeLines resolves every cart line against the catalog and copies the
// effective price into an order line, detaching it from future menu changes.
func (h *CheckoutCommandHandler) freezeLines(
	ctx context.Context,
	uow CheckoutUoW,
	cartLines []cart.Line,
) ([]order.Line, error) {
	ids := make([]kernel.UUID, 0, len(cartLines))
	for _, line := range cartLines {
		ids = append(ids, line.MenuItemID())
	}

	items, err := uow.CatalogRepository().GetMenuItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(cartLines))
	for _, cartLine := range cartLines {
		item, ok := items[cartLine.MenuItemID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menuItemId", cartLine.MenuItemID())
		}

		line, err := order.NewLine(
			kernel.NewUUID(),
			item.ID,
			cartLine.Quantity(),
			item.EffectivePrice(),
			cartLine.Instructions(),
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
