package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/postflow-io/postflow/pkg/models"
)

// principalContextKey is the echo context key holding the creator principal.
const principalContextKey = "creator_principal"

// extractCreatorID extracts the creator identity from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy)
func extractCreatorID(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	return c.Request().Header.Get("X-Remote-User")
}

// requirePrincipal rejects requests that arrive without an authenticated
// creator identity. The auth proxy in front of the service sets the headers;
// a request without them never passed the proxy.
func requirePrincipal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			creatorID := extractCreatorID(c)
			if creatorID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing creator identity")
			}
			c.Set(principalContextKey, models.CreatorPrincipal{CreatorID: creatorID})
			return next(c)
		}
	}
}

// principalFrom returns the principal stored by requirePrincipal.
func principalFrom(c *echo.Context) models.CreatorPrincipal {
	if p, ok := c.Get(principalContextKey).(models.CreatorPrincipal); ok {
		return p
	}
	return models.CreatorPrincipal{}
}
