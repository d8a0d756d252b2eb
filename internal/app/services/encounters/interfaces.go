package encounters

import (
	"context"

	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
)

type EncounterUsecase interface {
	Overview(ctx context.Context, token string) (*responses.ConsultationPage, error)
	SaveNotes(ctx context.Context, token string, request *requests.CreateEncounter) error
}
