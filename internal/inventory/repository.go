package inventory

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.InventoryItem, error)

	// Restock adds amount to quantity_on_hand. The amount keeps whatever
	// sign the caller provided; unlike order deduction there is no clamp.
	Restock(ctx context.Context, id int64, amount float64) error
}
