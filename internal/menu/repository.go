package menu

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

type Repository interface {
	// FindAllSorted returns the menu ordered by (category, name), the
	// grouping terminals render.
	FindAllSorted(ctx context.Context) ([]model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) error

	// DeleteWithRecipes removes the item's recipe links before the item
	// itself so the foreign key never fires. Historical order items keep
	// their name/price snapshots and are untouched.
	DeleteWithRecipes(ctx context.Context, id int64) error
}
