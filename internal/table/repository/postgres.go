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

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Table, error) {
	tables := []model.Table{}
	if err := r.DB.SelectContext(ctx, &tables, `SELECT * FROM restaurant_tables`); err != nil {
		return nil, fmt.Errorf("failed to fetch tables: %w", err)
	}
	return tables, nil
}

func (r *PGRepository) SetStatus(ctx context.Context, id int64, status model.TableStatus) error {
	query := `UPDATE restaurant_tables SET status = $1 WHERE id = $2`
	if _, err := r.DB.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("failed to set table %d status: %w", id, err)
	}
	return nil
}
