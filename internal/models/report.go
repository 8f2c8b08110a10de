package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ZReport is an immutable close-out snapshot persisted to z_reports. Once
// written it is never updated; the next X report window starts after its
// report date.
type ZReport struct {
	ReportID     int64           `json:"report_id"`
	ReportDate   time.Time       `json:"report_date"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	RestaurantID int64           `json:"restaurant_id"`
}

// X report window types: sales since the last Z close-out, or today's sales
// when no Z report exists yet for the restaurant.
const (
	XReportSinceLastZ = "sinceLastZReport"
	XReportSalesToday = "salesToday"
)

// XReport is an unsaved register snapshot. Type records which window was used.
type XReport struct {
	ReportDate   time.Time       `json:"report_date"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	RestaurantID int64           `json:"restaurant_id"`
	Type         string          `json:"type"`
}

// SalesReportRow is one menu item's total quantity sold within a date range.
type SalesReportRow struct {
	MenuID   int64  `json:"menu_id"`
	Name     string `json:"name"`
	TotalQty int64  `json:"total_qty"`
}

// ExcessReportRow is one inventory item with the percentage of its stock sold
// since a timestamp. Items under 10% sold (including items never sold, at 0%)
// are considered excess.
type ExcessReportRow struct {
	InventoryID    int64   `json:"inventory_id"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	PercentageSold float64 `json:"percentage_sold"`
}

// InventorySalesRow is the raw ingredient-to-sales join used to build the
// excess report: how much of an inventory item was consumed by orders since
// a timestamp.
type InventorySalesRow struct {
	InventoryID int64
	Name        string
	Quantity    int
	TotalSold   int64
}
