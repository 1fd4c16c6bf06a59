package menu

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/menu/dto"
)

type UseCase interface {
	CreateItem(ctx context.Context, input *dto.CreateMenuItemInput) error
	DeleteItem(ctx context.Context, id int64) error
}
