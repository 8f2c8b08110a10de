package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one row of the orders table.
type Order struct {
	OrderID    int64           `json:"order_id"`
	CostTotal  decimal.Decimal `json:"cost_total"`
	Date       time.Time       `json:"date"`
	CustomerID int64           `json:"customer_id"`
	StaffID    int64           `json:"staff_id"`
}

// OrderLine is one menu_to_order row. An order holds at most one line per
// menu item; re-adding the same item folds into the existing line's quantity.
type OrderLine struct {
	MenuID   int64 `json:"menu_id"`
	OrderID  int64 `json:"order_id"`
	Quantity int   `json:"quantity"`
}

// OrderedMenuItem pairs a line quantity with its resolved menu item, the
// shape returned when expanding an order's contents.
type OrderedMenuItem struct {
	Quantity int       `json:"quantity"`
	MenuItem *MenuItem `json:"menuItem"`
}
