package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/payment"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(payment.MethodCOD)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order and lines were persisted
	suite.assertOrderCount(1)
	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(2), lineCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	first := suite.createTestOrder(payment.MethodCOD)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Same number, fresh identity
	duplicate := suite.createTestOrderWithNumber(first.Number(), payment.MethodCOD)

	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder(payment.MethodJazzCash)
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.GetByNumber(ctx, originalOrder.Number())
	suite.Require().NoError(err)

	// Verify order details survived the round trip
	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal(originalOrder.Number(), retrievedOrder.Number())
	suite.Equal(originalOrder.CustomerID(), retrievedOrder.CustomerID())
	suite.Equal(originalOrder.RestaurantID(), retrievedOrder.RestaurantID())
	suite.Equal(order.StatusPending, retrievedOrder.Status())
	suite.Equal(order.PaymentStatePaid, retrievedOrder.PaymentState())
	suite.Equal(payment.MethodJazzCash, retrievedOrder.PaymentMethod())
	suite.Nil(retrievedOrder.DriverID())

	suite.True(originalOrder.Pricing().GrandTotal.IsEqual(retrievedOrder.Pricing().GrandTotal))
	suite.Equal("Flat 4, Gulberg III", retrievedOrder.Destination().Address)
	suite.Equal("Lahore", retrievedOrder.Destination().City)

	// Lines come back in insertion order with frozen prices
	suite.Require().Len(retrievedOrder.Lines(), 2)
	suite.Equal(originalOrder.Lines()[0].ID(), retrievedOrder.Lines()[0].ID())
	suite.True(originalOrder.Lines()[0].UnitPrice().IsEqual(retrievedOrder.Lines()[0].UnitPrice()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.GetByNumber(ctx, order.NewNumber())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_OrderLifecycle() {
	testCases := []struct {
		name          string
		initialStatus order.Status
		updatedStatus order.Status
		assignDriver  bool
		verify        func(*order.Order)
	}{
		{
			name:          "pending to confirmed",
			initialStatus: order.StatusPending,
			updatedStatus: order.StatusConfirmed,
			verify: func(o *order.Order) {
				suite.Equal(order.StatusConfirmed, o.Status())
				suite.Nil(o.DriverID())
			},
		},
		{
			name:          "ready to picked_up with driver",
			initialStatus: order.StatusReady,
			updatedStatus: order.StatusPickedUp,
			assignDriver:  true,
			verify: func(o *order.Order) {
				suite.Equal(order.StatusPickedUp, o.Status())
				suite.NotNil(o.DriverID())
			},
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			initialOrder := suite.createTestOrderWithStatus(tc.initialStatus, nil)
			suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
			suite.Require().NoError(suite.repository.Add(ctx, initialOrder))

			var driverID *kernel.UUID
			if tc.assignDriver {
				id := kernel.NewUUID()
				driverID = &id
			}

			updatedOrder, err := order.RestoreOrder(
				initialOrder.ID(),
				initialOrder.Number(),
				initialOrder.CustomerID(),
				initialOrder.RestaurantID(),
				driverID,
				tc.updatedStatus,
				initialOrder.PaymentState(),
				initialOrder.PaymentMethod(),
				initialOrder.Lines(),
				initialOrder.Pricing(),
				initialOrder.Destination(),
				initialOrder.Instructions(),
			)
			suite.Require().NoError(err)

			suite.tracker.On("TrackAggregate", updatedOrder.ID(), updatedOrder).Once()
			suite.Require().NoError(suite.repository.Update(ctx, updatedOrder))

			retrievedOrder, err := suite.repository.GetByNumber(ctx, initialOrder.Number())
			suite.Require().NoError(err)
			tc.verify(retrievedOrder)

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder(payment.MethodCOD)

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_SecondActiveDeliveryForDriver_ReturnsDriverBusy() {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	active := suite.createTestOrderWithStatus(order.StatusPickedUp, &driverID)
	suite.Require().NoError(suite.repository.Add(ctx, active))

	ready := suite.createTestOrderWithStatus(order.StatusReady, nil)
	suite.Require().NoError(suite.repository.Add(ctx, ready))

	// Same driver picking up a second order trips the active-delivery index.
	accepted, err := order.RestoreOrder(
		ready.ID(),
		ready.Number(),
		ready.CustomerID(),
		ready.RestaurantID(),
		&driverID,
		order.StatusPickedUp,
		ready.PaymentState(),
		ready.PaymentMethod(),
		ready.Lines(),
		ready.Pricing(),
		ready.Destination(),
		ready.Instructions(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, accepted)
	suite.Require().ErrorIs(err, order.ErrDriverBusy)

	// The ready order is untouched and the driver still holds one delivery.
	retrieved, err := suite.repository.GetByNumber(ctx, ready.Number())
	suite.Require().NoError(err)
	suite.Equal(order.StatusReady, retrieved.Status())
	suite.Nil(retrieved.DriverID())

	count, err := suite.repository.CountActiveDeliveries(ctx, driverID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountActiveDeliveries() {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	otherDriverID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	// One active delivery for the driver, one finished, one for someone else
	inTransit := suite.createTestOrderWithStatus(order.StatusPickedUp, &driverID)
	suite.Require().NoError(suite.repository.Add(ctx, inTransit))

	finished := suite.createTestOrderWithStatus(order.StatusDelivered, &driverID)
	suite.Require().NoError(suite.repository.Add(ctx, finished))

	otherDelivery := suite.createTestOrderWithStatus(order.StatusPickedUp, &otherDriverID)
	suite.Require().NoError(suite.repository.Add(ctx, otherDelivery))

	count, err := suite.repository.CountActiveDeliveries(ctx, driverID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	idleDriverID := kernel.NewUUID()
	count, err = suite.repository.CountActiveDeliveries(ctx, idleDriverID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with malformed number",
			operation: func() error {
				_, err := suite.repository.GetByNumber(context.Background(), "not-a-number")
				return err
			},
			expected: "order number",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				_, err := suite.repository.GetByNumber(context.Background(), order.NewNumber())
				return err
			},
			expected: "not found",
		},
		{
			name: "count with invalid driver id",
			operation: func() error {
				_, err := suite.repository.CountActiveDeliveries(context.Background(), kernel.UUID{})
				return err
			},
			expected: "required",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// createTestOrder creates a basic pending test order with two lines.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(method payment.Method) *order.Order {
	return suite.createTestOrderWithNumber(order.NewNumber(), method)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithNumber(
	number string, method payment.Method,
) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		kernel.NewUUID(),
		suite.createTestLines(),
		suite.createTestPricing(),
		order.Destination{Address: "Flat 4, Gulberg III", City: "Lahore"},
		method,
		"",
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderWithStatus creates a test order with specified status and optional driver.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(
	status order.Status, driverID *kernel.UUID,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		order.NewNumber(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		driverID,
		status,
		order.PaymentStatePending,
		payment.MethodCOD,
		suite.createTestLines(),
		suite.createTestPricing(),
		order.Destination{Address: "Flat 4, Gulberg III", City: "Lahore"},
		"",
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestLines() []order.Line {
	biryaniPrice, err := kernel.NewMoneyFromString("300.00")
	suite.Require().NoError(err)
	karahiPrice, err := kernel.NewMoneyFromString("200.00")
	suite.Require().NoError(err)

	first, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 2, biryaniPrice, "extra raita")
	suite.Require().NoError(err)
	second, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 1, karahiPrice, "")
	suite.Require().NoError(err)

	return []order.Line{first, second}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestPricing() order.Pricing {
	subtotal, err := kernel.NewMoneyFromString("800.00")
	suite.Require().NoError(err)
	deliveryFee, err := kernel.NewMoneyFromString("100.00")
	suite.Require().NoError(err)
	tax, err := kernel.NewMoneyFromString("40.00")
	suite.Require().NoError(err)
	grandTotal, err := kernel.NewMoneyFromString("940.00")
	suite.Require().NoError(err)

	return order.Pricing{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		GrandTotal:  grandTotal,
	}
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
