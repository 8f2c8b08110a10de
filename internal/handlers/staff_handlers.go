package handlers

import (
	"net/http"
	"strings"

	"restopos/internal/common"
	"restopos/internal/models"
	"restopos/internal/repositories"

	"github.com/labstack/echo/v4"
)

// StaffHandlers handles HTTP requests for staff records
type StaffHandlers struct {
	staffRepo repositories.StaffRepository
}

// NewStaffHandlers creates a new staff handlers instance
func NewStaffHandlers(staffRepo repositories.StaffRepository) *StaffHandlers {
	return &StaffHandlers{staffRepo: staffRepo}
}

// ListStaff handles GET /staff
func (h *StaffHandlers) ListStaff(c echo.Context) error {
	ctx := c.Request().Context()

	staff, err := h.staffRepo.List(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve staff")
	}

	return c.JSON(http.StatusOK, staff)
}

// AddStaff handles POST /staff/add. Staff added here have no credentials and
// cannot log in until they register through /auth/register.
func (h *StaffHandlers) AddStaff(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		RestaurantID int64  `json:"restaurant_id"`
		IsManager    bool   `json:"is_manager"`
		Name         string `json:"name"`
		Email        string `json:"email"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if strings.TrimSpace(req.Name) == "" {
		return common.SendValidationError(c, "name", "Name is required")
	}

	staff := &models.Staff{
		RestaurantID: req.RestaurantID,
		IsManager:    req.IsManager,
		Name:         req.Name,
		Email:        req.Email,
	}

	if err := h.staffRepo.Create(ctx, staff); err != nil {
		return common.SendServerError(c, "Failed to create staff member")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Staff member created successfully",
		"staff":   staff,
	})
}
