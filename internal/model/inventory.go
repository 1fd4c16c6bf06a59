package model

// InventoryItem tracks stock on hand. QuantityOnHand never goes below zero:
// order placement clamps deductions at zero inside the database statement.
type InventoryItem struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	QuantityOnHand float64 `db:"quantity_on_hand" json:"quantity_on_hand"`
	Unit           string  `db:"unit" json:"unit"`
}
