package state

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

// UseCase is the single source of truth for what terminals see. No mutation
// handler computes or caches client-facing state on its own.
type UseCase interface {
	BuildSnapshot(ctx context.Context) (*model.Snapshot, error)
}
