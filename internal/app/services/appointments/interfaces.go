package appointments

import (
	"context"

	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	Overview(ctx context.Context, token, date string) (*responses.AppointmentsPage, error)
	Schedule(ctx context.Context, token string, request *requests.CreateAppointment) error
	SetStatus(ctx context.Context, token, appointmentID, status string) error
}
