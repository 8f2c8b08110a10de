package handlers

import (
	"net/http"

	"restopos/internal/common"
	"restopos/internal/services"

	"github.com/labstack/echo/v4"
)

// InventoryHandlers handles HTTP requests for inventory items
type InventoryHandlers struct {
	inventoryService services.InventoryService
}

// NewInventoryHandlers creates a new inventory handlers instance
func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

// ListInventory handles GET /inventory
func (h *InventoryHandlers) ListInventory(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.inventoryService.List(ctx)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

// GetInventoryItem handles GET /inventory/:id
func (h *InventoryHandlers) GetInventoryItem(c echo.Context) error {
	ctx := c.Request().Context()

	inventoryID, err := common.ParseID(c.Param("id"), "inventory_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	item, err := h.inventoryService.GetByID(ctx, inventoryID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

// GetInventoryItemByName handles GET /inventory/name/:name
func (h *InventoryHandlers) GetInventoryItemByName(c echo.Context) error {
	ctx := c.Request().Context()

	name := c.Param("name")
	if name == "" {
		return common.SendValidationError(c, "name", "Inventory item name is required")
	}

	item, err := h.inventoryService.GetByName(ctx, name)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

// CreateInventoryItem handles POST /inventory
func (h *InventoryHandlers) CreateInventoryItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item, err := h.inventoryService.Create(ctx, req.Name, req.Quantity)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":       "Inventory item created successfully",
		"inventoryItem": item,
	})
}

// UpdateInventoryQuantity handles POST /inventory/update-quantity. Exactly one
// of quantity (absolute set), add, or subtract must be present. Absolute sets
// address the item by id or by name; deltas require an id.
func (h *InventoryHandlers) UpdateInventoryQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		InventoryID *int64  `json:"inventory_id"`
		Name        *string `json:"name"`
		Quantity    *int    `json:"quantity"`
		Add         *int    `json:"add"`
		Subtract    *int    `json:"subtract"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	set := 0
	if req.Quantity != nil {
		set++
	}
	if req.Add != nil {
		set++
	}
	if req.Subtract != nil {
		set++
	}
	if set != 1 {
		return common.SendClientError(c, "Exactly one of quantity, add, or subtract is required")
	}

	var err error
	switch {
	case req.Quantity != nil && req.InventoryID != nil:
		err = h.inventoryService.SetQuantityByID(ctx, *req.InventoryID, *req.Quantity)
	case req.Quantity != nil && req.Name != nil:
		err = h.inventoryService.SetQuantityByName(ctx, common.SafeString(req.Name), *req.Quantity)
	case req.Quantity != nil:
		return common.SendClientError(c, "An inventory_id or name is required")
	case req.InventoryID == nil:
		return common.SendClientError(c, "An inventory_id is required for add and subtract")
	case req.Add != nil:
		err = h.inventoryService.AddQuantity(ctx, *req.InventoryID, *req.Add)
	default:
		err = h.inventoryService.SubtractQuantity(ctx, *req.InventoryID, *req.Subtract)
	}
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Inventory quantity updated successfully",
	})
}
