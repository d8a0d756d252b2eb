package auth

import (
	"context"
	"sync"

	"gangosri-portal/internal/app/contracts"
	"gangosri-portal/internal/app/services/core/session"
	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/exceptions"
	"gangosri-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	authUsecaseInstance AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	AuthHisClient  contracts.AuthHisClient
	SessionService session.SessionService
	Log            *zap.Logger
}

func NewAuthUsecase(authHisClient contracts.AuthHisClient, sessionService session.SessionService, logger *zap.Logger) AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AuthHisClient:  authHisClient,
			SessionService: sessionService,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

// Login exchanges credentials for a HIS token and persists the token together
// with the returned profile as one session. The session only exists once both
// halves are in hand.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (string, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return "", exceptions.ErrInputValidation(err, constvars.ErrClientLoginFailed)
	}

	token, err := uc.AuthHisClient.Login(ctx, request)
	if err != nil {
		return "", err
	}

	sessionID, err := uc.SessionService.Create(ctx, token.AccessToken, token.User)
	if err != nil {
		return "", err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserRoleKey, token.User.Role),
	)
	return sessionID, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return uc.SessionService.Destroy(ctx, sessionID)
}
