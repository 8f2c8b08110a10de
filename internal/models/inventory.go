package models

// InventoryItem is one stocked ingredient from the inventory table. Quantity
// may go negative: order placement decrements stock without a floor, and the
// restock report is how negative or low stock gets surfaced.
type InventoryItem struct {
	InventoryID int64  `json:"inventory_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
}
