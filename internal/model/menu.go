package model

type MenuItem struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Category    string  `db:"category" json:"category"`
	Price       float64 `db:"price" json:"price"`
	Icon        string  `db:"icon" json:"icon"`
	Description string  `db:"description" json:"description"`
	Allergens   string  `db:"allergens" json:"allergens"`
}

// Recipe declares how much of one inventory item a single unit of a menu
// item consumes. A menu item with no recipe rows consumes nothing.
type Recipe struct {
	MenuItemID      int64   `db:"menu_item_id" json:"menu_item_id"`
	InventoryItemID int64   `db:"inventory_item_id" json:"inventory_item_id"`
	QuantityNeeded  float64 `db:"quantity_needed" json:"quantity_needed"`
}
