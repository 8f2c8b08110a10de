package models

import "github.com/shopspring/decimal"

// Restaurant is one row of the restaurant table. Revenue is a denormalized
// running total refreshed on demand and by the hourly background job.
type Restaurant struct {
	RestaurantID int64           `json:"restaurant_id"`
	Name         string          `json:"name"`
	Revenue      decimal.Decimal `json:"revenue"`
}
