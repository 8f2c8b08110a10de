package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the standardized JSON error envelope.
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// CreateErrorResponse builds a standardized error response.
func CreateErrorResponse(code string, message string, details map[string]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// SendValidationError sends a field-scoped validation error response.
func SendValidationError(c echo.Context, field, message string) error {
	details := map[string]string{
		field: message,
	}
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("VALIDATION_ERROR", "Validation failed", details))
}

// SendClientError sends a generic bad-request response.
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("CLIENT_ERROR", message, nil))
}

// SendServerError sends an internal-error response.
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, CreateErrorResponse("SERVER_ERROR", message, nil))
}

// SendNotFoundError sends a not-found response for the named resource.
func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, CreateErrorResponse("NOT_FOUND", fmt.Sprintf("%s not found", resource), nil))
}

// SendConflictError sends a conflict response.
func SendConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, CreateErrorResponse("CONFLICT", message, nil))
}

// SendUnauthorizedError sends an unauthorized response.
func SendUnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, CreateErrorResponse("UNAUTHORIZED", "Unauthorized access", nil))
}

// RespondError maps a service error to the matching JSON error response by
// its kind.
func RespondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, CreateErrorResponse("NOT_FOUND", err.Error(), nil))
	case errors.Is(err, ErrValidation):
		return c.JSON(http.StatusBadRequest, CreateErrorResponse("VALIDATION_ERROR", err.Error(), nil))
	case errors.Is(err, ErrConflict):
		return c.JSON(http.StatusConflict, CreateErrorResponse("CONFLICT", err.Error(), nil))
	default:
		return SendServerError(c, err.Error())
	}
}
