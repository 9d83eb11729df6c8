package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fullstack-labs/user-service/internal/api/middleware"
	"github.com/fullstack-labs/user-service/internal/core/auth"
)

// principal extracts the claims injected by the Auth middleware. A handler
// behind the gate should never see a missing principal; if it does, the
// route was wired without the middleware and the request is rejected.
func principal(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(middleware.PrincipalKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
