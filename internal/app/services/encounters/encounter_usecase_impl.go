package encounters

import (
	"context"
	"sync"

	"gangosri-portal/internal/app/contracts"
	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
	"gangosri-portal/internal/pkg/exceptions"
	"gangosri-portal/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	encounterUsecaseInstance EncounterUsecase
	onceEncounterUsecase     sync.Once
)

type encounterUsecase struct {
	EncounterHisClient contracts.EncounterHisClient
	PatientHisClient   contracts.PatientHisClient
	Log                *zap.Logger
}

func NewEncounterUsecase(encounterHisClient contracts.EncounterHisClient, patientHisClient contracts.PatientHisClient, logger *zap.Logger) EncounterUsecase {
	onceEncounterUsecase.Do(func() {
		encounterUsecaseInstance = &encounterUsecase{
			EncounterHisClient: encounterHisClient,
			PatientHisClient:   patientHisClient,
			Log:                logger,
		}
	})
	return encounterUsecaseInstance
}

// Overview loads recent encounters plus the patient list the consultation
// form needs, concurrently, waiting for both.
func (uc *encounterUsecase) Overview(ctx context.Context, token string) (*responses.ConsultationPage, error) {
	page := new(responses.ConsultationPage)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		encounterList, err := uc.EncounterHisClient.FindAll(groupCtx, token, "")
		if err != nil {
			return err
		}
		page.Encounters = encounterList
		return nil
	})
	group.Go(func() error {
		patientList, err := uc.PatientHisClient.FindAll(groupCtx, token, "")
		if err != nil {
			return err
		}
		page.Patients = patientList
		return nil
	})

	if err := group.Wait(); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("encounterUsecase.Overview fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return page, nil
}

func (uc *encounterUsecase) SaveNotes(ctx context.Context, token string, request *requests.CreateEncounter) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	_, err := uc.EncounterHisClient.Create(ctx, token, request)
	return err
}
