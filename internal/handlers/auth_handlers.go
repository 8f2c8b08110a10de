package handlers

import (
	"net/http"
	"strings"

	"restopos/internal/common"
	"restopos/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles staff registration and login
type AuthHandlers struct {
	authService services.AuthService
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// Register handles POST /auth/register
func (h *AuthHandlers) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		RestaurantID int64  `json:"restaurant_id"`
		IsManager    bool   `json:"is_manager"`
		Name         string `json:"name"`
		Username     string `json:"username"`
		Password     string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if strings.TrimSpace(req.Name) == "" {
		return common.SendValidationError(c, "name", "Name is required")
	}
	if strings.TrimSpace(req.Username) == "" {
		return common.SendValidationError(c, "username", "Username is required")
	}
	if len(req.Password) < 8 {
		return common.SendValidationError(c, "password", "Password must be at least 8 characters")
	}

	staff, err := h.authService.Register(ctx, req.RestaurantID, req.IsManager, req.Name, req.Username, req.Password)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Staff member registered successfully",
		"staff":   staff,
	})
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if req.Username == "" || req.Password == "" {
		return common.SendClientError(c, "Username and password are required")
	}

	token, staff, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return common.SendUnauthorizedError(c)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"staff": staff,
	})
}

// GoogleLogin handles POST /auth/google
func (h *AuthHandlers) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		IDToken string `json:"id_token"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if req.IDToken == "" {
		return common.SendValidationError(c, "id_token", "Google ID token is required")
	}

	token, staff, err := h.authService.GoogleLogin(ctx, req.IDToken)
	if err != nil {
		return common.SendUnauthorizedError(c)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"staff": staff,
	})
}
