package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/tokens"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// RequireAuth validates the bearer token and puts its identity into the echo
// context for the handlers behind it.
func RequireAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tokens.Parse(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, string(claims.Role))
			return next(c)
		}
	}
}

func RequireFarmer(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole(models.RoleFarmer, "only farmers can perform this action", next)
}

func RequireVendor(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole(models.RoleVendor, "only vendors can perform this action", next)
}

func requireRole(role models.Role, message string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if Role(c) != role {
			return echo.NewHTTPError(http.StatusForbidden, message)
		}
		return next(c)
	}
}

func UserID(c echo.Context) (uuid.UUID, error) {
	s, _ := c.Get(CtxUserID).(string)
	return uuid.Parse(s)
}

func Role(c echo.Context) models.Role {
	s, _ := c.Get(CtxRole).(string)
	return models.Role(s)
}
