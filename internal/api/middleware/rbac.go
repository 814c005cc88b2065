package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RolePredicate decides whether a role grants access to a route. Predicates
// are fixed at route-registration time, not per request.
type RolePredicate func(role string) bool

// Require enforces a role predicate over the identity injected by Auth.
// A request with no identity, or whose role fails the predicate, is
// terminated with 403.
func Require(allowed RolePredicate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" || !allowed(role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireRole restricts a route to exactly one role.
func RequireRole(role string) echo.MiddlewareFunc {
	return Require(func(r string) bool { return r == role })
}
