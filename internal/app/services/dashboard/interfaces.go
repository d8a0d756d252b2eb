package dashboard

import (
	"context"

	"gangosri-portal/internal/app/models"
)

type DashboardUsecase interface {
	Stats(ctx context.Context, token string) (*models.DashboardStats, error)
}
