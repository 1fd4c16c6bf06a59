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

func (r *PGRepository) FindAll(ctx context.Context) ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	if err := r.DB.SelectContext(ctx, &items, `SELECT * FROM inventory`); err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	return items, nil
}

func (r *PGRepository) Restock(ctx context.Context, id int64, amount float64) error {
	query := `UPDATE inventory SET quantity_on_hand = quantity_on_hand + $1 WHERE id = $2`
	if _, err := r.DB.ExecContext(ctx, query, amount, id); err != nil {
		return fmt.Errorf("failed to restock inventory item %d: %w", id, err)
	}
	return nil
}
