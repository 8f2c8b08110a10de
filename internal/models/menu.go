package models

import "github.com/shopspring/decimal"

// MenuItem is one sellable item from the menu table. Ingredients holds the
// item's bill of materials and is attached on detail reads; shallow list
// reads leave it nil.
type MenuItem struct {
	MenuID      int64            `json:"menu_id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	Type        string           `json:"type"`
	Ingredients []MenuIngredient `json:"inventory_items,omitempty"`
}

// MenuIngredient is one inventory_to_menu row: the quantity of an inventory
// item consumed per unit of the menu item sold.
type MenuIngredient struct {
	InventoryID int64 `json:"inventory_id"`
	MenuID      int64 `json:"menu_id,omitempty"`
	Quantity    int   `json:"quantity"`
}
