package model

// Snapshot is the complete state every terminal renders. It is rebuilt
// wholesale after each mutation and replaced on the client, never patched.
type Snapshot struct {
	Menu        []MenuItem        `json:"menu"`
	Inventory   []InventoryItem   `json:"inventory"`
	Tables      []Table           `json:"tables"`
	Orders      []Order           `json:"orders"`
	Revenue     float64           `json:"revenue"`
	TotalOrders int               `json:"totalOrders"`
	TableBills  map[int64]float64 `json:"tableBills"`
}
