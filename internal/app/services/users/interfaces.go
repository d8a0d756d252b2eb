package users

import (
	"context"

	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/dto/requests"
)

type UserUsecase interface {
	List(ctx context.Context, token string) ([]models.UserProfile, error)
	Register(ctx context.Context, token string, request *requests.RegisterUser) error
	SetStatus(ctx context.Context, token, userID string, isActive bool) error
}
