package usecase

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-restaurant-service/internal/menu"
	"github.com/fekuna/omnipos-restaurant-service/internal/menu/dto"
	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type menuUseCase struct {
	repo   menu.Repository
	logger logger.ZapLogger
}

func NewMenuUseCase(repo menu.Repository, log logger.ZapLogger) menu.UseCase {
	return &menuUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *menuUseCase) CreateItem(ctx context.Context, input *dto.CreateMenuItemInput) error {
	if input.Name == "" {
		return errors.New("menu item name is required")
	}
	if input.Price < 0 {
		return errors.New("menu item price cannot be negative")
	}

	item := &model.MenuItem{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Icon:        input.Icon,
		Description: input.Description,
		Allergens:   input.Allergens,
	}
	return uc.repo.Create(ctx, item)
}

func (uc *menuUseCase) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.New("invalid menu item id")
	}
	return uc.repo.DeleteWithRecipes(ctx, id)
}
