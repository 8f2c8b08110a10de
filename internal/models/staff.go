package models

// Staff is one row of the staff table. HashedPassword is never serialized.
type Staff struct {
	StaffID        int64  `json:"staff_id"`
	RestaurantID   int64  `json:"restaurant_id"`
	IsManager      bool   `json:"is_manager"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Username       string `json:"username,omitempty"`
	HashedPassword string `json:"-"`
}
