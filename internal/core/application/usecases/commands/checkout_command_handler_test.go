package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/payment"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"
)

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	item := testMenuItem(t, restaurantID, "300.00")
	customerCart := testCart(t, customerID, restaurantID, item, 2)
	restaurant := testRestaurant(t, restaurantID, "200.00")

	cmd, err := commands.NewCheckoutCommand(customerID, "12 Canal Road", "Lahore", payment.MethodCOD, "")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)

	var created *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomerForUpdate", ctx, customerID).Return(customerCart, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetMenuItems", ctx, []kernel.UUID{item.ID}).
			Return(map[kernel.UUID]catalog.MenuItem{item.ID: item}, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetRestaurant", ctx, restaurantID).Return(restaurant, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		cartRepo.On("Delete", ctx, customerCart.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, services.NewCheckoutCalculator())
	number, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.Number(), number)
	assert.NoError(t, order.ValidateNumber(number))

	// 2 x 300 = 600, fee 100, tax 30, grand 730
	assert.Equal(t, "600.00", created.Pricing().Subtotal.String())
	assert.Equal(t, "30.00", created.Pricing().Tax.String())
	assert.Equal(t, "730.00", created.Pricing().GrandTotal.String())
	assert.Equal(t, order.StatusPending, created.Status())
	assert.Equal(t, order.PaymentStatePending, created.PaymentState())

	require.Len(t, created.Lines(), 1)
	assert.Equal(t, "300.00", created.Lines()[0].UnitPrice().String())

	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_FreezesDiscountedPrice(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	item := testMenuItem(t, restaurantID, "300.00")
	discounted := mustMoney(t, "240.00")
	item.DiscountedPrice = &discounted
	customerCart := testCart(t, customerID, restaurantID, item, 1)

	cmd, err := commands.NewCheckoutCommand(customerID, "12 Canal Road", "Lahore", payment.MethodCard, "")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)

	var created *order.Order
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CatalogRepository").Return(catalogRepo)
	cartRepo.On("GetByCustomerForUpdate", ctx, customerID).Return(customerCart, nil)
	cartRepo.On("Delete", ctx, customerCart.ID()).Return(nil)
	catalogRepo.On("GetMenuItems", ctx, mock.Anything).
		Return(map[kernel.UUID]catalog.MenuItem{item.ID: item}, nil)
	catalogRepo.On("GetRestaurant", ctx, restaurantID).
		Return(testRestaurant(t, restaurantID, "0.00"), nil)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*order.Order)
		}).Return(nil)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCheckoutCommandHandler(factory, services.NewCheckoutCalculator())
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "240.00", created.Lines()[0].UnitPrice().String())
	// electronic method starts the order paid
	assert.Equal(t, order.PaymentStatePaid, created.PaymentState())
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, "12 Canal Road", "Lahore", payment.MethodCOD, "")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomerForUpdate", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerId", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, services.NewCheckoutCalculator())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
}

func TestCheckoutCommandHandler_Handle_BelowMinimumOrderKeepsCart(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	item := testMenuItem(t, restaurantID, "300.00")
	customerCart := testCart(t, customerID, restaurantID, item, 1)

	cmd, err := commands.NewCheckoutCommand(customerID, "12 Canal Road", "Lahore", payment.MethodCOD, "")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("CatalogRepository").Return(catalogRepo)
	cartRepo.On("GetByCustomerForUpdate", ctx, customerID).Return(customerCart, nil)
	catalogRepo.On("GetMenuItems", ctx, mock.Anything).
		Return(map[kernel.UUID]catalog.MenuItem{item.ID: item}, nil)
	catalogRepo.On("GetRestaurant", ctx, restaurantID).
		Return(testRestaurant(t, restaurantID, "500.00"), nil)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCheckoutCommandHandler(factory, services.NewCheckoutCalculator())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrBelowMinimumOrder)
	// no order was created and the cart was not deleted
	cartRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
