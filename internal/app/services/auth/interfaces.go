package auth

import (
	"context"

	"gangosri-portal/internal/pkg/dto/requests"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (sessionID string, err error)
	Logout(ctx context.Context, sessionID string) error
}
