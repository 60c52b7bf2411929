package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// Header names set by the identity gateway in front of this service.
// The gateway authenticates the caller and forwards the verified identity;
// this service trusts the headers and only enforces role-based access.
const (
	HeaderUserID       = "X-User-ID"
	HeaderUserRole     = "X-User-Role"
	HeaderUserCity     = "X-User-City"
	HeaderRestaurantID = "X-Restaurant-ID"
)

const principalContextKey = "principal"

// Principal is the authenticated caller as asserted by the identity gateway.
// RestaurantID is set only for restaurant owners; City only for drivers.
type Principal struct {
	UserID       kernel.UUID
	Role         order.Role
	City         string
	RestaurantID *kernel.UUID
}

// PrincipalMiddleware extracts the caller's identity from the gateway headers
// and rejects requests without a parseable user id and role.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderUserID))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, newErrorBody("unauthorized", "missing or malformed user identity"))
			}

			role, err := order.RoleFromString(c.Request().Header.Get(HeaderUserRole))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, newErrorBody("unauthorized", "missing or malformed user role"))
			}

			principal := Principal{
				UserID: userID,
				Role:   role,
				City:   c.Request().Header.Get(HeaderUserCity),
			}

			if raw := c.Request().Header.Get(HeaderRestaurantID); raw != "" {
				restaurantID, parseErr := kernel.UUIDFromString(raw)
				if parseErr != nil {
					return c.JSON(http.StatusUnauthorized, newErrorBody("unauthorized", "malformed restaurant identity"))
				}
				principal.RestaurantID = &restaurantID
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// principalFrom returns the caller identity stored by PrincipalMiddleware.
func principalFrom(c echo.Context) Principal {
	principal, _ := c.Get(principalContextKey).(Principal)
	return principal
}

// requireRole writes a 403 response and reports false when the caller's role
// differs from the one the route is scoped to.
func requireRole(c echo.Context, principal Principal, role order.Role) bool {
	if principal.Role != role {
		_ = c.JSON(http.StatusForbidden, newErrorBody("forbidden", "this operation is not available for role "+principal.Role.String()))
		return false
	}
	return true
}
