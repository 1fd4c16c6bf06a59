package auth

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

// ErrInvalidCredentials distinguishes a failed lookup from storage being
// down; login is the one operation that reports both to the client.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UseCase interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
}
