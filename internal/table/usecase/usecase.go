package usecase

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/table"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type tableUseCase struct {
	repo   table.Repository
	logger logger.ZapLogger
}

func NewTableUseCase(repo table.Repository, log logger.ZapLogger) table.UseCase {
	return &tableUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *tableUseCase) ResetTable(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.New("invalid table id")
	}
	return uc.repo.SetStatus(ctx, id, model.TableAvailable)
}
