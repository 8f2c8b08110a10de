package common

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims carried by a staff session token.
type SessionClaims struct {
	StaffID      int64 `json:"staff_id"`
	RestaurantID int64 `json:"restaurant_id"`
	IsManager    bool  `json:"is_manager"`
	jwt.RegisteredClaims
}
