package dto

type CreateMenuItemInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Icon        string  `json:"icon"`
	Description string  `json:"desc"`
	Allergens   string  `json:"allergens"`
}
