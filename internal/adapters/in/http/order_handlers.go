package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/payment"
)

// Checkout handles POST /api/v1/orders - turns the customer's cart into an
// order and returns its number.
func (s *Server) Checkout(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	var request checkoutRequest
	if err := c.Bind(&request); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	method, err := payment.MethodFromString(request.PaymentMethod)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCheckoutCommand(
		principal.UserID,
		request.DeliveryAddress,
		request.DeliveryCity,
		method,
		request.Instructions,
	)
	if err != nil {
		return respondError(c, err)
	}

	orderNumber, err := s.checkoutHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, checkoutResponse{OrderNumber: orderNumber})
}

// GetCustomerOrders handles GET /api/v1/orders - lists the customer's orders,
// optionally filtered with ?status=.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	statusFilter, err := statusFilterFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(principal.UserID, statusFilter)
	if err != nil {
		return respondError(c, err)
	}

	summaries, err := s.getCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, renderOrderSummaries(summaries))
}

// GetOrder handles GET /api/v1/orders/:orderNumber - returns the customer's
// order with the frozen lines and monetary breakdown.
func (s *Server) GetOrder(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	query, err := queries.NewGetOrderQuery(c.Param("orderNumber"), principal.UserID)
	if err != nil {
		return respondError(c, err)
	}

	detail, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, renderOrderDetail(detail))
}

// CancelOrder handles POST /api/v1/orders/:orderNumber/cancel - customer
// cancellation, allowed while the order is pending or confirmed.
func (s *Server) CancelOrder(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	cmd, err := commands.NewCancelOrderCommand(c.Param("orderNumber"), principal.UserID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ProcessPayment handles POST /api/v1/orders/:orderNumber/payments - runs a
// settlement attempt and returns its transaction id. Failed electronic
// attempts are retryable with another call.
func (s *Server) ProcessPayment(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	var request processPaymentRequest
	if err := c.Bind(&request); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	method, err := payment.MethodFromString(request.PaymentMethod)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewProcessPaymentCommand(
		c.Param("orderNumber"),
		principal.UserID,
		method,
		payment.Meta{PhoneNumber: request.PhoneNumber, CardLastFour: request.CardLastFour},
	)
	if err != nil {
		return respondError(c, err)
	}

	transactionID, err := s.processPaymentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, processPaymentResponse{TransactionID: transactionID})
}

// ConfirmCODDelivery handles POST /api/v1/orders/:orderNumber/payments/confirm-delivery -
// the assigned driver confirms the cash handover of a delivered COD order.
func (s *Server) ConfirmCODDelivery(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleDeliveryDriver) {
		return nil
	}

	cmd, err := commands.NewConfirmCODDeliveryCommand(c.Param("orderNumber"), principal.UserID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.confirmCODDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SubmitReview handles POST /api/v1/orders/:orderNumber/reviews - the
// customer reviews a delivered order, once.
func (s *Server) SubmitReview(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	var request submitReviewRequest
	if err := c.Bind(&request); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSubmitReviewCommand(c.Param("orderNumber"), principal.UserID, request.Rating, request.Comment)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.submitReviewHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// statusFilterFromQuery parses the optional ?status= listing filter.
func statusFilterFromQuery(c echo.Context) (*order.Status, error) {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil, nil
	}

	status, err := order.StatusFromString(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
