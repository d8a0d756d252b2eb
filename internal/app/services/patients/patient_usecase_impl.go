package patients

import (
	"context"
	"sync"

	"gangosri-portal/internal/app/contracts"
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
	"gangosri-portal/internal/pkg/exceptions"
	"gangosri-portal/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	patientUsecaseInstance PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientHisClient      contracts.PatientHisClient
	EncounterHisClient    contracts.EncounterHisClient
	PrescriptionHisClient contracts.PrescriptionHisClient
	ReportHisClient       contracts.ReportHisClient
	Log                   *zap.Logger
}

func NewPatientUsecase(
	patientHisClient contracts.PatientHisClient,
	encounterHisClient contracts.EncounterHisClient,
	prescriptionHisClient contracts.PrescriptionHisClient,
	reportHisClient contracts.ReportHisClient,
	logger *zap.Logger,
) PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientHisClient:      patientHisClient,
			EncounterHisClient:    encounterHisClient,
			PrescriptionHisClient: prescriptionHisClient,
			ReportHisClient:       reportHisClient,
			Log:                   logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) List(ctx context.Context, token, search string) ([]models.Patient, error) {
	return uc.PatientHisClient.FindAll(ctx, token, search)
}

// Profile joins the patient record with their encounters, prescriptions and
// reports. The four fetches run concurrently and the page renders only after
// all of them settle; the first failure wins.
func (uc *patientUsecase) Profile(ctx context.Context, token, patientID string) (*responses.PatientProfilePage, error) {
	page := new(responses.PatientProfilePage)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		patient, err := uc.PatientHisClient.FindByID(groupCtx, token, patientID)
		if err != nil {
			return err
		}
		page.Patient = patient
		return nil
	})
	group.Go(func() error {
		encounters, err := uc.EncounterHisClient.FindAll(groupCtx, token, patientID)
		if err != nil {
			return err
		}
		page.Encounters = encounters
		return nil
	})
	group.Go(func() error {
		prescriptions, err := uc.PrescriptionHisClient.FindAll(groupCtx, token, patientID)
		if err != nil {
			return err
		}
		page.Prescriptions = prescriptions
		return nil
	})
	group.Go(func() error {
		reports, err := uc.ReportHisClient.FindAll(groupCtx, token, patientID)
		if err != nil {
			return err
		}
		page.Reports = reports
		return nil
	})

	if err := group.Wait(); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("patientUsecase.Profile fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	return page, nil
}

func (uc *patientUsecase) Register(ctx context.Context, token string, request *requests.CreatePatient) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	_, err := uc.PatientHisClient.Create(ctx, token, request)
	return err
}
