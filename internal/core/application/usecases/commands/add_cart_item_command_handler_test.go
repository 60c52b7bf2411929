package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

func TestAddCartItemCommandHandler_Handle_CreatesCartOnFirstAdd(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	item := testMenuItem(t, restaurantID, "300.00")

	cmd, err := commands.NewAddCartItemCommand(customerID, item.ID, 1, "")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetMenuItem", ctx, item.ID).Return(item, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomerForUpdate", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerId", customerID)).Once(),
		cartRepo.On("Add", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_MergesExistingLine(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	item := testMenuItem(t, restaurantID, "300.00")
	existingCart := testCart(t, customerID, restaurantID, item, 1)

	cmd, err := commands.NewAddCartItemCommand(customerID, item.ID, 2, "")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetMenuItem", ctx, item.ID).Return(item, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomerForUpdate", ctx, customerID).Return(existingCart, nil).Once(),
		cartRepo.On("Update", ctx, existingCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, existingCart.Lines(), 1)
	assert.Equal(t, 3, existingCart.Lines()[0].Quantity())
}

func TestAddCartItemCommandHandler_Handle_UnavailableItem(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	item := testMenuItem(t, kernel.NewUUID(), "300.00")
	item.IsAvailable = false

	cmd, err := commands.NewAddCartItemCommand(customerID, item.ID, 1, "")
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetMenuItem", ctx, item.ID).Return(item, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, catalog.ErrItemUnavailable)
}

func TestAddCartItemCommandHandler_Handle_RestaurantConflict(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	heldRestaurantID := kernel.NewUUID()
	heldItem := testMenuItem(t, heldRestaurantID, "250.00")
	existingCart := testCart(t, customerID, heldRestaurantID, heldItem, 1)

	otherItem := testMenuItem(t, kernel.NewUUID(), "300.00")

	cmd, err := commands.NewAddCartItemCommand(customerID, otherItem.ID, 1, "")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetMenuItem", ctx, otherItem.ID).Return(otherItem, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomerForUpdate", ctx, customerID).Return(existingCart, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetRestaurant", ctx, heldRestaurantID).
			Return(testRestaurant(t, heldRestaurantID, "200.00"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, cart.ErrRestaurantConflict)

	var conflict *cart.RestaurantConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Karachi Biryani House", conflict.RestaurantName)

	// the existing cart is untouched
	require.Len(t, existingCart.Lines(), 1)
	assert.Equal(t, 1, existingCart.Lines()[0].Quantity())
}

func TestAddCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockCartUoWFactory)
	handler := commands.NewAddCartItemCommandHandler(factory)

	err := handler.Handle(ctx, commands.AddCartItemCommand{})

	require.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewAddCartItemCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), 0, "")
	require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}
