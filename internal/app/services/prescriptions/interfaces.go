package prescriptions

import (
	"context"

	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	Overview(ctx context.Context, token string) (*responses.PrescriptionsPage, error)
	Create(ctx context.Context, token string, request *requests.CreatePrescription) error
}
