package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fullstack-labs/user-service/internal/api/metrics"
	"github.com/fullstack-labs/user-service/internal/core/auth"
)

// PrincipalKey is the echo context key under which Auth stores the
// verified token claims.
const PrincipalKey = "principal"

// Auth is the authentication gate: it extracts the bearer token, verifies
// it, and injects the decoded claims into the request context. The scheme
// keyword is matched case-sensitively ("Bearer", single space); a missing
// header or empty token segment is rejected before any verification
// attempt. All rejections are a uniform 401.
func Auth(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(PrincipalKey, claims)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
