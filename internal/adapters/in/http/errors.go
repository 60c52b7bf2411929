package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"
)

// ErrorBody is the JSON envelope every failed request carries:
// a machine-readable kind, a human-readable message, and optional
// error-specific detail fields.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the error kind and any error-specific context.
type ErrorDetail struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Detail  map[string]any `json:"detail,omitempty"`
}

func newErrorBody(kind, message string) ErrorBody {
	return ErrorBody{Error: ErrorDetail{Kind: kind, Message: message}}
}

func newErrorBodyWithDetail(kind, message string, detail map[string]any) ErrorBody {
	return ErrorBody{Error: ErrorDetail{Kind: kind, Message: message, Detail: detail}}
}

// respondError maps a use-case error onto the HTTP status and error body the
// API contract promises. Business errors keep their message; anything
// unrecognized is treated as a storage fault, logged, and hidden behind a
// generic 500.
func respondError(c echo.Context, err error) error {
	var restaurantConflict *cart.RestaurantConflictError
	if errors.As(err, &restaurantConflict) {
		return c.JSON(http.StatusConflict, newErrorBodyWithDetail(
			"restaurant_conflict", err.Error(), map[string]any{
				"restaurantId":   restaurantConflict.RestaurantID.String(),
				"restaurantName": restaurantConflict.RestaurantName,
			}))
	}

	var belowMinimum *services.BelowMinimumOrderError
	if errors.As(err, &belowMinimum) {
		return c.JSON(http.StatusBadRequest, newErrorBodyWithDetail(
			"below_minimum_order", err.Error(), map[string]any{
				"minimumOrder": belowMinimum.Minimum,
				"subtotal":     belowMinimum.Subtotal,
			}))
	}

	var itemUnavailable *catalog.ItemUnavailableError
	if errors.As(err, &itemUnavailable) {
		return c.JSON(http.StatusBadRequest, newErrorBodyWithDetail(
			"item_unavailable", err.Error(), map[string]any{
				"itemName": itemUnavailable.Name,
			}))
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, newErrorBody("not_found", err.Error()))

	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return c.JSON(http.StatusConflict, newErrorBody("already_exists", err.Error()))

	case errors.Is(err, order.ErrIllegalTransition):
		return c.JSON(http.StatusConflict, newErrorBody("illegal_transition", err.Error()))

	case errors.Is(err, order.ErrInvalidCancellation):
		return c.JSON(http.StatusConflict, newErrorBody("invalid_cancellation", err.Error()))

	case errors.Is(err, order.ErrDriverBusy):
		return c.JSON(http.StatusConflict, newErrorBody("driver_busy", err.Error()))

	case errors.Is(err, order.ErrAlreadyPaid):
		return c.JSON(http.StatusConflict, newErrorBody("already_paid", err.Error()))

	case errors.Is(err, commands.ErrCartIsEmpty):
		return c.JSON(http.StatusBadRequest, newErrorBody("cart_is_empty", err.Error()))

	case errors.Is(err, commands.ErrOrderIsNotCOD):
		return c.JSON(http.StatusBadRequest, newErrorBody("order_is_not_cod", err.Error()))

	case errors.Is(err, commands.ErrOrderIsNotDelivered):
		return c.JSON(http.StatusBadRequest, newErrorBody("order_is_not_delivered", err.Error()))

	case errors.Is(err, commands.ErrOrderIsNotReviewable):
		return c.JSON(http.StatusBadRequest, newErrorBody("order_is_not_reviewable", err.Error()))

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrQuantityIsInvalid),
		errors.Is(err, commands.ErrQuantityIsNegative),
		errors.Is(err, commands.ErrDeliveryAddressIsRequired),
		errors.Is(err, commands.ErrDeliveryCityIsRequired),
		errors.Is(err, commands.ErrPhoneNumberIsRequired),
		errors.Is(err, commands.ErrCardNumberIsRequired):
		return c.JSON(http.StatusBadRequest, newErrorBody("validation", err.Error()))

	default:
		c.Logger().Errorf("unhandled use case error: %v", err)
		return c.JSON(http.StatusInternalServerError, newErrorBody("internal", "internal server error"))
	}
}

// respondBadRequest renders a validation failure for malformed input that
// never reached a use case, like an unparseable body or path parameter.
func respondBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, newErrorBody("validation", message))
}
