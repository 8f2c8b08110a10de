package common

import "context"

type contextKey string

const (
	StaffIDKey      contextKey = "staff_id"
	RestaurantIDKey contextKey = "restaurant_id"
	IsManagerKey    contextKey = "is_manager"
)

// GetStaffIDFromContext extracts the authenticated staff id set by the JWT
// middleware.
func GetStaffIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(StaffIDKey).(int64)
	return id, ok
}

// GetRestaurantIDFromContext extracts the authenticated staff member's
// restaurant id.
func GetRestaurantIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(RestaurantIDKey).(int64)
	return id, ok
}

// GetIsManagerFromContext reports whether the authenticated staff member is a
// manager.
func GetIsManagerFromContext(ctx context.Context) (bool, bool) {
	v, ok := ctx.Value(IsManagerKey).(bool)
	return v, ok
}
