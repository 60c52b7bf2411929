package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// GetCart handles GET /api/v1/cart - returns the customer's cart priced at
// current menu prices. A customer without a cart gets an empty view.
func (s *Server) GetCart(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	query, err := queries.NewGetCartQuery(principal.UserID)
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.getCartHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, renderCart(view))
}

// AddCartItem handles POST /api/v1/cart/items - adds a menu item to the cart,
// creating the cart on first add.
func (s *Server) AddCartItem(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	var request addCartItemRequest
	if err := c.Bind(&request); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return respondBadRequest(c, "menuItemId must be a valid UUID")
	}

	cmd, err := commands.NewAddCartItemCommand(principal.UserID, menuItemID, request.Quantity, request.Instructions)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.addCartItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// UpdateCartLine handles PATCH /api/v1/cart/items/:lineID - changes a line's
// quantity. Quantity zero removes the line.
func (s *Server) UpdateCartLine(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	lineID, err := kernel.UUIDFromString(c.Param("lineID"))
	if err != nil {
		return respondBadRequest(c, "lineID must be a valid UUID")
	}

	var request updateCartLineRequest
	if err := c.Bind(&request); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateCartLineCommand(principal.UserID, lineID, request.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.updateCartLineHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveCartLine handles DELETE /api/v1/cart/items/:lineID.
func (s *Server) RemoveCartLine(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	lineID, err := kernel.UUIDFromString(c.Param("lineID"))
	if err != nil {
		return respondBadRequest(c, "lineID must be a valid UUID")
	}

	cmd, err := commands.NewRemoveCartLineCommand(principal.UserID, lineID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.removeCartLineHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart - drops the whole cart. Clearing an
// absent cart succeeds.
func (s *Server) ClearCart(c echo.Context) error {
	principal := principalFrom(c)
	if !requireRole(c, principal, order.RoleCustomer) {
		return nil
	}

	cmd, err := commands.NewClearCartCommand(principal.UserID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.clearCartHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
