package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAllSorted(ctx context.Context) ([]model.MenuItem, error) {
	items := []model.MenuItem{}
	query := `SELECT * FROM menu_items ORDER BY category, name`
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}
	return items, nil
}

func (r *PGRepository) Create(ctx context.Context, item *model.MenuItem) error {
	query := `
        INSERT INTO menu_items (name, category, price, icon, description, allergens)
        VALUES (:name, :category, :price, :icon, :description, :allergens)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

func (r *PGRepository) DeleteWithRecipes(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Recipes reference the item; they go first.
	if _, err := tx.ExecContext(ctx, `DELETE FROM recipes WHERE menu_item_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete recipes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	return tx.Commit()
}
