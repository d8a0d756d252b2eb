package dashboard

import (
	"context"
	"sync"

	"gangosri-portal/internal/app/contracts"
	"gangosri-portal/internal/app/models"

	"go.uber.org/zap"
)

var (
	dashboardUsecaseInstance DashboardUsecase
	onceDashboardUsecase     sync.Once
)

type dashboardUsecase struct {
	DashboardHisClient contracts.DashboardHisClient
	Log                *zap.Logger
}

func NewDashboardUsecase(dashboardHisClient contracts.DashboardHisClient, logger *zap.Logger) DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			DashboardHisClient: dashboardHisClient,
			Log:                logger,
		}
	})
	return dashboardUsecaseInstance
}

func (uc *dashboardUsecase) Stats(ctx context.Context, token string) (*models.DashboardStats, error) {
	return uc.DashboardHisClient.Stats(ctx, token)
}
