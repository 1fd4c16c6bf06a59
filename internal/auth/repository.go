package auth

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

type Repository interface {
	// FindByCredentials returns (nil, nil) when no user matches.
	FindByCredentials(ctx context.Context, username, password string) (*model.User, error)
}
