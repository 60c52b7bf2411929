package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

// GetAvailableOrders handles GET /api/v1/driver/orders/available - orders
// ready for pickup in the driver's city.
func (s *Server) GetAvailableOrders(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleDeliveryDriver) {
		return nil
	}

	query, err := queries.NewGetAvailableOrdersQuery(principal.City)
	if err != nil {
		return respondError(c, err)
	}

	summaries, err := s.getAvailableOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, renderOrderSummaries(summaries))
}

// AcceptOrder handles POST /api/v1/driver/orders/:orderNumber/accept - the
// driver claims a ready order; one active delivery per driver.
func (s *Server) AcceptOrder(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleDeliveryDriver) {
		return nil
	}

	cmd, err := commands.NewAcceptOrderCommand(c.Param("orderNumber"), principal.UserID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.acceptOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeDriverOrderStatus handles PATCH /api/v1/driver/orders/:orderNumber -
// the assigned driver advances the delivery (picked_up, delivered).
func (s *Server) ChangeDriverOrderStatus(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleDeliveryDriver) {
		return nil
	}

	var request changeOrderStatusRequest
	if err := c.Bind(&request); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(
		c.Param("orderNumber"),
		principal.UserID,
		order.RoleDeliveryDriver,
		target,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetActiveDelivery handles GET /api/v1/driver/orders/active - the driver's
// single in-flight delivery, or 204 when there is none.
func (s *Server) GetActiveDelivery(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleDeliveryDriver) {
		return nil
	}

	query, err := queries.NewGetActiveDeliveryQuery(principal.UserID)
	if err != nil {
		return respondError(c, err)
	}

	summary, err := s.getActiveDeliveryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		// No active delivery is an expected state, not a client mistake.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, renderOrderSummary(summary))
}

// GetDriverHistory handles GET /api/v1/driver/orders/history - the driver's
// delivered orders, newest first.
func (s *Server) GetDriverHistory(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleDeliveryDriver) {
		return nil
	}

	query, err := queries.NewGetDriverHistoryQuery(principal.UserID)
	if err != nil {
		return respondError(c, err)
	}

	summaries, err := s.getDriverHistoryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, renderOrderSummaries(summaries))
}
