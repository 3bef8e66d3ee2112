package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lemonqwest/household-api/internal/core/domain"
)

// RequireRole restricts a route group to the given roles. The role claim is
// taken from context, so Auth must run first.
func RequireRole(allowedRoles ...domain.UserRole) echo.MiddlewareFunc {
	allowed := make(map[domain.UserRole]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.UserRole(role)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
