package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC is the authorization gate. It must run after Auth: the role it
// checks is the one embedded in the verified token, never re-read from
// the store, so role changes only take effect on re-login (bounded by the
// token TTL). A missing principal or a role outside the allow-list is a
// 403, distinct from the gate's 401.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
