package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"skincare-api/internal/dto"
	"skincare-api/internal/model"
	"skincare-api/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context) (*service.CustomClaims, string) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, "missing token"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, "invalid authorization header format"
	}
	claims, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		return nil, fmt.Sprintf("invalid token: %v", err)
	}
	return claims, ""
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, msg := extractClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrNotAuthenticated, msg))
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

// RequireRole 在 RequireAuth 之上加上角色檢查
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			if !service.Authorize(claims.Role, required) {
				return c.JSON(http.StatusForbidden, dto.Fail(dto.ErrPermission, "Permission denied"))
			}
			return next(c)
		})
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireRole(model.RoleAdmin)(next)
}
