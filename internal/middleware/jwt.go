package middleware

import (
	"context"
	"net/http"

	"restopos/internal/common"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// JWTConfig builds the echo-jwt configuration for protected routes. On a
// valid token the session claims are copied into the request context so
// handlers and services can read them without touching the token.
func JWTConfig(jwtSecret string) echojwt.Config {
	return echojwt.Config{
		SigningKey: []byte(jwtSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(common.SessionClaims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*common.SessionClaims)
			if !ok {
				return
			}
			ctx := context.WithValue(c.Request().Context(), common.StaffIDKey, claims.StaffID)
			ctx = context.WithValue(ctx, common.RestaurantIDKey, claims.RestaurantID)
			ctx = context.WithValue(ctx, common.IsManagerKey, claims.IsManager)
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}
}

// RequireManager gates manager-only routes. It must run after the JWT
// middleware.
func RequireManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isManager, ok := common.GetIsManagerFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			if !isManager {
				return echo.NewHTTPError(http.StatusForbidden, "Manager role required")
			}
			return next(c)
		}
	}
}
