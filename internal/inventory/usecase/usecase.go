package usecase

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-restaurant-service/internal/inventory"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) Restock(ctx context.Context, id int64, amount float64) error {
	if id <= 0 {
		return errors.New("invalid inventory item id")
	}
	return uc.repo.Restock(ctx, id, amount)
}
