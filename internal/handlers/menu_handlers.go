package handlers

import (
	"net/http"

	"restopos/internal/common"
	"restopos/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// MenuHandlers handles HTTP requests for menu items
type MenuHandlers struct {
	menuService services.MenuService
}

// NewMenuHandlers creates a new menu handlers instance
func NewMenuHandlers(menuService services.MenuService) *MenuHandlers {
	return &MenuHandlers{menuService: menuService}
}

// ListMenu handles GET /menu. With ?detailed=true each item carries its
// ingredient composition.
func (h *MenuHandlers) ListMenu(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("detailed") == "true" {
		items, err := h.menuService.ListDetailed(ctx)
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}

	items, err := h.menuService.List(ctx)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

// GetMenuItem handles GET /menu/:id
func (h *MenuHandlers) GetMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	menuID, err := common.ParseID(c.Param("id"), "menu_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	item, err := h.menuService.GetByID(ctx, menuID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

// GetMenuItemByName handles GET /menu/name/:name
func (h *MenuHandlers) GetMenuItemByName(c echo.Context) error {
	ctx := c.Request().Context()

	name := c.Param("name")
	if name == "" {
		return common.SendValidationError(c, "name", "Menu item name is required")
	}

	item, err := h.menuService.GetByName(ctx, name)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

// ListMenuByType handles GET /menu/type/:type
func (h *MenuHandlers) ListMenuByType(c echo.Context) error {
	ctx := c.Request().Context()

	foodType := c.Param("type")
	if foodType == "" {
		return common.SendValidationError(c, "type", "Menu type is required")
	}

	items, err := h.menuService.ListByType(ctx, foodType)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

// CreateMenuItem handles POST /menu. Composition is a newline-separated list
// of "ingredient name | quantity" pairs; every named ingredient must already
// exist in inventory.
func (h *MenuHandlers) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name        string          `json:"name"`
		Price       decimal.Decimal `json:"price"`
		Type        string          `json:"type"`
		Composition string          `json:"composition"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item, err := h.menuService.Create(ctx, req.Name, req.Price, req.Type, req.Composition)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Menu item created successfully",
		"menuItem": item,
	})
}

// DeleteMenuItem handles DELETE /menu/:id
func (h *MenuHandlers) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	menuID, err := common.ParseID(c.Param("id"), "menu_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.menuService.Delete(ctx, menuID); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Menu item deleted successfully",
	})
}

// UpdateMenuItemPrice handles PUT /menu/:id/price
func (h *MenuHandlers) UpdateMenuItemPrice(c echo.Context) error {
	ctx := c.Request().Context()

	menuID, err := common.ParseID(c.Param("id"), "menu_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		Price decimal.Decimal `json:"price"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.menuService.UpdatePriceByID(ctx, menuID, req.Price); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Menu item price updated successfully",
	})
}

// UpdateMenuItemPriceByName handles PUT /menu/name/:name/price
func (h *MenuHandlers) UpdateMenuItemPriceByName(c echo.Context) error {
	ctx := c.Request().Context()

	name := c.Param("name")
	if name == "" {
		return common.SendValidationError(c, "name", "Menu item name is required")
	}

	var req struct {
		Price decimal.Decimal `json:"price"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.menuService.UpdatePriceByName(ctx, name, req.Price); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Menu item price updated successfully",
	})
}
