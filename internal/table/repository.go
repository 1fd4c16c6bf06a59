package table

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Table, error)

	// SetStatus writes the status unconditionally. Transitions are driven by
	// the handlers (order placement, settlement, reset), never by clients.
	SetStatus(ctx context.Context, id int64, status model.TableStatus) error
}
