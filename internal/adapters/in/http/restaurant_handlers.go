package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/order"
)

// GetRestaurantOrders handles GET /api/v1/restaurant/orders - the kitchen
// board for the owner's restaurant, optionally filtered with ?status=.
func (s *Server) GetRestaurantOrders(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleRestaurantOwner) {
		return nil
	}
	if principal.RestaurantID == nil {
		return respondBadRequest(c, "restaurant identity is missing")
	}

	statusFilter, err := statusFilterFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetRestaurantOrdersQuery(*principal.RestaurantID, statusFilter)
	if err != nil {
		return respondError(c, err)
	}

	summaries, err := s.getRestaurantOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, renderOrderSummaries(summaries))
}

// ChangeRestaurantOrderStatus handles PATCH /api/v1/restaurant/orders/:orderNumber -
// the owner advances an order through the kitchen side of the lifecycle.
func (s *Server) ChangeRestaurantOrderStatus(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleRestaurantOwner) {
		return nil
	}
	if principal.RestaurantID == nil {
		return respondBadRequest(c, "restaurant identity is missing")
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
		*principal.RestaurantID,
		order.RoleRestaurantOwner,
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
