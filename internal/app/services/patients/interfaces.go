package patients

import (
	"context"

	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	List(ctx context.Context, token, search string) ([]models.Patient, error)
	Profile(ctx context.Context, token, patientID string) (*responses.PatientProfilePage, error)
	Register(ctx context.Context, token string, request *requests.CreatePatient) error
}
