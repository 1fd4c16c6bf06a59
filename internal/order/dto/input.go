package dto

type OrderItemInput struct {
	MenuItemID int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

type PlaceOrderInput struct {
	TableNo int64            `json:"table"`
	Total   float64          `json:"total"`
	Items   []OrderItemInput `json:"items"`
}
