package usecase

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/auth"
	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
	"go.uber.org/zap"
)

type authUseCase struct {
	repo   auth.Repository
	logger logger.ZapLogger
}

func NewAuthUseCase(repo auth.Repository, log logger.ZapLogger) auth.UseCase {
	return &authUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := uc.repo.FindByCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.logger.Warn("login rejected", zap.String("username", username))
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}
