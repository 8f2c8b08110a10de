package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseID validates and parses a positive integer id from a path or query
// parameter.
func ParseID(idStr string, fieldName string) (int64, error) {
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return 0, Validationf("%s is required", fieldName)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, Validationf("%s must be a positive integer", fieldName)
	}
	return id, nil
}

// ValidatePositiveInteger validates positive integer values with an upper
// bound.
func ValidatePositiveInteger(value int, fieldName string, maxValue int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive", fieldName)
	}
	if value > maxValue {
		return fmt.Errorf("%s cannot exceed %d", fieldName, maxValue)
	}
	return nil
}

// ValidatePrice validates a non-negative money amount.
func ValidatePrice(value decimal.Decimal, fieldName string) error {
	if value.IsNegative() {
		return fmt.Errorf("%s cannot be negative", fieldName)
	}
	return nil
}

// ValidateDateFormat validates YYYY-MM-DD date strings. Empty strings pass;
// required-ness is enforced by the caller.
func ValidateDateFormat(dateStr, fieldName string) error {
	if strings.TrimSpace(dateStr) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return fmt.Errorf("%s must be in YYYY-MM-DD format", fieldName)
	}
	return nil
}

// SafeString dereferences an optional string.
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
