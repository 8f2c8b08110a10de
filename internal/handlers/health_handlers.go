package handlers

import (
	"context"
	"net/http"
	"time"

	"restopos/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HealthHandlers handles health check and monitoring endpoints
type HealthHandlers struct {
	db repositories.Database
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(db repositories.Database) *HealthHandlers {
	return &HealthHandlers{db: db}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version"`
}

// HealthCheck handles GET /health
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()
	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
		Version:   "1.0.0",
	}

	if err := h.checkDatabase(ctx); err != nil {
		health.Services["database"] = "unhealthy"
		health.Status = "degraded"
	} else {
		health.Services["database"] = "healthy"
	}

	statusCode := http.StatusOK
	if health.Status == "degraded" {
		statusCode = http.StatusPartialContent
	}

	return c.JSON(statusCode, health)
}

func (h *HealthHandlers) checkDatabase(ctx context.Context) error {
	_, err := h.db.Exec(ctx, "SELECT 1")
	return err
}

// ReadinessCheck handles GET /health/ready
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	if err := h.checkDatabase(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"message": "Database unavailable",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ready",
		"message": "All systems operational",
	})
}
