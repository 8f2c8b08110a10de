package handlers

import (
	"net/http"
	"time"

	"restopos/internal/common"
	"restopos/internal/models"
	"restopos/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// OrderHandlers handles HTTP requests for orders
type OrderHandlers struct {
	orderService services.OrderService
}

// NewOrderHandlers creates a new order handlers instance
func NewOrderHandlers(orderService services.OrderService) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// PlaceOrder handles POST /orders
func (h *OrderHandlers) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		CostTotal  decimal.Decimal `json:"cost_total"`
		Date       string          `json:"date"`
		CustomerID int64           `json:"customer_id"`
		StaffID    int64           `json:"staff_id"`
		Items      []struct {
			MenuID   int64 `json:"menu_id"`
			Quantity int   `json:"quantity"`
		} `json:"items"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	var date time.Time
	if req.Date != "" {
		if err := common.ValidateDateFormat(req.Date, "date"); err != nil {
			return common.SendValidationError(c, "date", err.Error())
		}
		date, _ = time.Parse("2006-01-02", req.Date)
	}

	staffID := req.StaffID
	if staffID == 0 {
		if id, ok := common.GetStaffIDFromContext(ctx); ok {
			staffID = id
		}
	}

	lines := make([]models.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, models.OrderLine{MenuID: item.MenuID, Quantity: item.Quantity})
	}

	orderID, err := h.orderService.Place(ctx, req.CostTotal, date, req.CustomerID, staffID, lines)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Order placed successfully",
		"order_id": orderID,
	})
}

// ListOrders handles GET /orders
func (h *OrderHandlers) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.List(ctx)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// ListRecentOrders handles GET /orders/recent
func (h *OrderHandlers) ListRecentOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListRecent(ctx)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ParseID(c.Param("id"), "order_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	order, err := h.orderService.GetByID(ctx, orderID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

// ListOrdersByCustomer handles GET /orders/customer/:id
func (h *OrderHandlers) ListOrdersByCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	customerID, err := common.ParseID(c.Param("id"), "customer_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	orders, err := h.orderService.ListByCustomer(ctx, customerID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// ListOrdersByDate handles GET /orders/date/:date
func (h *OrderHandlers) ListOrdersByDate(c echo.Context) error {
	ctx := c.Request().Context()

	dateStr := c.Param("date")
	if err := common.ValidateDateFormat(dateStr, "date"); err != nil {
		return common.SendValidationError(c, "date", err.Error())
	}
	date, _ := time.Parse("2006-01-02", dateStr)

	orders, err := h.orderService.ListByDate(ctx, date)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// ListOrdersSince handles GET /orders/since/:date
func (h *OrderHandlers) ListOrdersSince(c echo.Context) error {
	ctx := c.Request().Context()

	dateStr := c.Param("date")
	if err := common.ValidateDateFormat(dateStr, "date"); err != nil {
		return common.SendValidationError(c, "date", err.Error())
	}
	date, _ := time.Parse("2006-01-02", dateStr)

	orders, err := h.orderService.ListSince(ctx, date)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrderItems handles GET /orders/:id/items, expanding each line into its
// menu item.
func (h *OrderHandlers) GetOrderItems(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ParseID(c.Param("id"), "order_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	items, err := h.orderService.MenuItemsByOrderID(ctx, orderID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

// CancelOrder handles DELETE /orders/:id. Ingredient stock consumed by the
// order is not restored.
func (h *OrderHandlers) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ParseID(c.Param("id"), "order_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.orderService.Cancel(ctx, orderID); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Order cancelled successfully",
	})
}

// UpdateOrderPrice handles PUT /orders/:id/price
func (h *OrderHandlers) UpdateOrderPrice(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ParseID(c.Param("id"), "order_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		CostTotal decimal.Decimal `json:"cost_total"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.orderService.UpdatePrice(ctx, orderID, req.CostTotal); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Order price updated successfully",
	})
}

// AddOrderItem handles POST /orders/:id/items. Re-adding a menu item already
// on the order folds into the existing line's quantity.
func (h *OrderHandlers) AddOrderItem(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ParseID(c.Param("id"), "order_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		MenuID   int64 `json:"menu_id"`
		Quantity int   `json:"quantity"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.orderService.AddLineItem(ctx, orderID, req.MenuID, req.Quantity); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Order item added successfully",
	})
}

// RemoveOrderItem handles DELETE /orders/:id/items/:menu_id
func (h *OrderHandlers) RemoveOrderItem(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ParseID(c.Param("id"), "order_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	menuID, err := common.ParseID(c.Param("menu_id"), "menu_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.orderService.RemoveLineItem(ctx, orderID, menuID); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Order item removed successfully",
	})
}
