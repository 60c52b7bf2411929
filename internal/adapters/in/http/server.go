// Package http exposes the ordering engine over an echo REST API. Handlers
// translate between the JSON contract and application commands/queries; all
// business decisions stay in the use cases. Callers are identified by the
// identity-gateway headers parsed by PrincipalMiddleware.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler        commands.AddCartItemCommandHandler
	updateCartLineHandler     commands.UpdateCartLineCommandHandler
	removeCartLineHandler     commands.RemoveCartLineCommandHandler
	clearCartHandler          commands.ClearCartCommandHandler
	checkoutHandler           commands.CheckoutCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	acceptOrderHandler        commands.AcceptOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	processPaymentHandler     commands.ProcessPaymentCommandHandler
	confirmCODDeliveryHandler commands.ConfirmCODDeliveryCommandHandler
	submitReviewHandler       commands.SubmitReviewCommandHandler

	// Query handlers
	getCartHandler             queries.GetCartQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	getAvailableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	getActiveDeliveryHandler   queries.GetActiveDeliveryQueryHandler
	getDriverHistoryHandler    queries.GetDriverHistoryQueryHandler
}

// Handlers bundles every use case handler the server dispatches to.
type Handlers struct {
	AddCartItem        commands.AddCartItemCommandHandler
	UpdateCartLine     commands.UpdateCartLineCommandHandler
	RemoveCartLine     commands.RemoveCartLineCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	Checkout           commands.CheckoutCommandHandler
	ChangeOrderStatus  commands.ChangeOrderStatusCommandHandler
	AcceptOrder        commands.AcceptOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	ProcessPayment     commands.ProcessPaymentCommandHandler
	ConfirmCODDelivery commands.ConfirmCODDeliveryCommandHandler
	SubmitReview       commands.SubmitReviewCommandHandler

	GetCart             queries.GetCartQueryHandler
	GetCustomerOrders   queries.GetCustomerOrdersQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetRestaurantOrders queries.GetRestaurantOrdersQueryHandler
	GetAvailableOrders  queries.GetAvailableOrdersQueryHandler
	GetActiveDelivery   queries.GetActiveDeliveryQueryHandler
	GetDriverHistory    queries.GetDriverHistoryQueryHandler
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		addCartItemHandler:        handlers.AddCartItem,
		updateCartLineHandler:     handlers.UpdateCartLine,
		removeCartLineHandler:     handlers.RemoveCartLine,
		clearCartHandler:          handlers.ClearCart,
		checkoutHandler:           handlers.Checkout,
		changeOrderStatusHandler:  handlers.ChangeOrderStatus,
		acceptOrderHandler:        handlers.AcceptOrder,
		cancelOrderHandler:        handlers.CancelOrder,
		processPaymentHandler:     handlers.ProcessPayment,
		confirmCODDeliveryHandler: handlers.ConfirmCODDelivery,
		submitReviewHandler:       handlers.SubmitReview,

		getCartHandler:             handlers.GetCart,
		getCustomerOrdersHandler:   handlers.GetCustomerOrders,
		getOrderHandler:            handlers.GetOrder,
		getRestaurantOrdersHandler: handlers.GetRestaurantOrders,
		getAvailableOrdersHandler:  handlers.GetAvailableOrders,
		getActiveDeliveryHandler:   handlers.GetActiveDelivery,
		getDriverHistoryHandler:    handlers.GetDriverHistory,
	}
}

// RegisterRoutes mounts the API on the echo instance. Everything under
// /api/v1 requires a gateway-asserted principal; /health does not.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", PrincipalMiddleware())

	api.GET("/cart", s.GetCart)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:lineID", s.UpdateCartLine)
	api.DELETE("/cart/items/:lineID", s.RemoveCartLine)

	api.POST("/orders", s.Checkout)
	api.GET("/orders", s.GetCustomerOrders)
	api.GET("/orders/:orderNumber", s.GetOrder)
	api.POST("/orders/:orderNumber/cancel", s.CancelOrder)
	api.POST("/orders/:orderNumber/payments", s.ProcessPayment)
	api.POST("/orders/:orderNumber/payments/confirm-delivery", s.ConfirmCODDelivery)
	api.POST("/orders/:orderNumber/reviews", s.SubmitReview)

	api.GET("/restaurant/orders", s.GetRestaurantOrders)
	api.PATCH("/restaurant/orders/:orderNumber", s.ChangeRestaurantOrderStatus)

	api.GET("/driver/orders/available", s.GetAvailableOrders)
	api.GET("/driver/orders/active", s.GetActiveDelivery)
	api.GET("/driver/orders/history", s.GetDriverHistory)
	api.POST("/driver/orders/:orderNumber/accept", s.AcceptOrder)
	api.PATCH("/driver/orders/:orderNumber", s.ChangeDriverOrderStatus)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
