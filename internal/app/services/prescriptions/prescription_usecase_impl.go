package prescriptions

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
	prescriptionUsecaseInstance PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

type prescriptionUsecase struct {
	PrescriptionHisClient contracts.PrescriptionHisClient
	PatientHisClient      contracts.PatientHisClient
	Log                   *zap.Logger
}

func NewPrescriptionUsecase(prescriptionHisClient contracts.PrescriptionHisClient, patientHisClient contracts.PatientHisClient, logger *zap.Logger) PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionHisClient: prescriptionHisClient,
			PatientHisClient:      patientHisClient,
			Log:                   logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) Overview(ctx context.Context, token string) (*responses.PrescriptionsPage, error) {
	page := new(responses.PrescriptionsPage)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		prescriptionList, err := uc.PrescriptionHisClient.FindAll(groupCtx, token, "")
		if err != nil {
			return err
		}
		page.Prescriptions = prescriptionList
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
		uc.Log.Error("prescriptionUsecase.Overview fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return page, nil
}

func (uc *prescriptionUsecase) Create(ctx context.Context, token string, request *requests.CreatePrescription) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	_, err := uc.PrescriptionHisClient.Create(ctx, token, request)
	return err
}
