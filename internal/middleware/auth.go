package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	authpkg "github.com/tagadplatforms/contact-api/internal/auth"
)

// RequireAuth authenticates the request with the configured policy and
// stores the caller identity in the request context. With the allow-all
// policy the middleware is a pass-through.
func RequireAuth(policy authpkg.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := policy.Authenticate(bearerToken(c.Request().Header.Get("Authorization")))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or missing credentials"})
			}

			c.Set(ContextKeyIdentity, identity)
			return next(c)
		}
	}
}

// RequireRole enforces that the authenticated caller carries the expected
// role according to the policy.
func RequireRole(policy authpkg.Policy, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(ContextKeyIdentity).(*authpkg.Identity)
			if err := policy.Authorize(identity, role); err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
			}
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
