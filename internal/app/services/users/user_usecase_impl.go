package users

import (
	"context"
	"sync"

	"gangosri-portal/internal/app/contracts"
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/exceptions"
	"gangosri-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	userUsecaseInstance UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserHisClient contracts.UserHisClient
	AuthHisClient contracts.AuthHisClient
	Log           *zap.Logger
}

func NewUserUsecase(userHisClient contracts.UserHisClient, authHisClient contracts.AuthHisClient, logger *zap.Logger) UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserHisClient: userHisClient,
			AuthHisClient: authHisClient,
			Log:           logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) List(ctx context.Context, token string) ([]models.UserProfile, error) {
	return uc.UserHisClient.FindAll(ctx, token)
}

func (uc *userUsecase) Register(ctx context.Context, token string, request *requests.RegisterUser) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	_, err := uc.AuthHisClient.Register(ctx, token, request)
	return err
}

func (uc *userUsecase) SetStatus(ctx context.Context, token, userID string, isActive bool) error {
	return uc.UserHisClient.UpdateStatus(ctx, token, userID, &requests.UpdateUserStatus{IsActive: isActive})
}
