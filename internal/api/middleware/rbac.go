package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/shoprecords/records-api/internal/core/domain"
)

// RBAC admits only callers whose role is listed. It must run after Auth; the
// role is read from the request identity, or from the echo context when a
// caller set it directly.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(allowedRoles, callerRole(c)) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

func callerRole(c echo.Context) string {
	if id, ok := domain.IdentityFrom(c.Request().Context()); ok {
		return id.Role
	}
	role, _ := c.Get("role").(string)
	return role
}
