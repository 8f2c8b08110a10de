package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restopos/internal/common"
	"restopos/internal/repositories"
	"restopos/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultRestockThreshold = 10

// RestaurantHandlers handles restaurant records and the register reports
type RestaurantHandlers struct {
	restaurantRepo repositories.RestaurantRepository
	reportService  services.ReportService
}

// NewRestaurantHandlers creates a new restaurant handlers instance
func NewRestaurantHandlers(restaurantRepo repositories.RestaurantRepository, reportService services.ReportService) *RestaurantHandlers {
	return &RestaurantHandlers{
		restaurantRepo: restaurantRepo,
		reportService:  reportService,
	}
}

// ListRestaurants handles GET /restaurant
func (h *RestaurantHandlers) ListRestaurants(c echo.Context) error {
	ctx := c.Request().Context()

	restaurants, err := h.restaurantRepo.List(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve restaurants")
	}

	return c.JSON(http.StatusOK, restaurants)
}

// RefreshRevenue handles PUT /restaurant/:id/revenue, recomputing the stored
// revenue from the orders table.
func (h *RestaurantHandlers) RefreshRevenue(c echo.Context) error {
	ctx := c.Request().Context()

	restaurantID, err := common.ParseID(c.Param("id"), "restaurant_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.restaurantRepo.UpdateRevenue(ctx, restaurantID); err != nil {
		return common.SendServerError(c, "Failed to refresh revenue")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Restaurant revenue refreshed successfully",
	})
}

// RestockReport handles GET /restaurant/restockreport
func (h *RestaurantHandlers) RestockReport(c echo.Context) error {
	ctx := c.Request().Context()

	threshold := defaultRestockThreshold
	if thresholdParam := c.QueryParam("threshold"); thresholdParam != "" {
		t, err := strconv.Atoi(thresholdParam)
		if err != nil || t < 0 {
			return common.SendValidationError(c, "threshold", "Threshold must be a non-negative integer")
		}
		threshold = t
	}

	items, err := h.reportService.RestockReport(ctx, threshold)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

// SalesReport handles GET /restaurant/salesreport
func (h *RestaurantHandlers) SalesReport(c echo.Context) error {
	ctx := c.Request().Context()

	startStr := c.QueryParam("start")
	endStr := c.QueryParam("end")
	if err := common.ValidateDateFormat(startStr, "start"); err != nil {
		return common.SendValidationError(c, "start", err.Error())
	}
	if err := common.ValidateDateFormat(endStr, "end"); err != nil {
		return common.SendValidationError(c, "end", err.Error())
	}
	start, _ := time.Parse("2006-01-02", startStr)
	end, _ := time.Parse("2006-01-02", endStr)
	if end.Before(start) {
		return common.SendValidationError(c, "end", "End date cannot be before start date")
	}

	rows, err := h.reportService.SalesReport(ctx, start, end)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, rows)
}

// ExcessReport handles GET /restaurant/excessreport
func (h *RestaurantHandlers) ExcessReport(c echo.Context) error {
	ctx := c.Request().Context()

	sinceStr := c.QueryParam("since")
	if err := common.ValidateDateFormat(sinceStr, "since"); err != nil {
		return common.SendValidationError(c, "since", err.Error())
	}
	since, _ := time.Parse("2006-01-02", sinceStr)

	rows, err := h.reportService.ExcessReport(ctx, since)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, rows)
}

// XReport handles GET /restaurant/xreport
func (h *RestaurantHandlers) XReport(c echo.Context) error {
	ctx := c.Request().Context()

	restaurantID, err := h.resolveRestaurantID(c)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	report, err := h.reportService.XReport(ctx, restaurantID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// ZReport handles GET /restaurant/zreport. A failed close-out still returns
// the report body so the register shows total_sales = -1.
func (h *RestaurantHandlers) ZReport(c echo.Context) error {
	ctx := c.Request().Context()

	restaurantID, err := h.resolveRestaurantID(c)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	report, err := h.reportService.ZReport(ctx, restaurantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, report)
	}

	return c.JSON(http.StatusOK, report)
}

// resolveRestaurantID reads restaurant_id from the query string, falling back
// to the authenticated staff member's restaurant.
func (h *RestaurantHandlers) resolveRestaurantID(c echo.Context) (int64, error) {
	if param := c.QueryParam("restaurant_id"); param != "" {
		return common.ParseID(param, "restaurant_id")
	}

	restaurantID, ok := common.GetRestaurantIDFromContext(c.Request().Context())
	if !ok {
		return 0, errors.New("a restaurant_id is required")
	}
	return restaurantID, nil
}
