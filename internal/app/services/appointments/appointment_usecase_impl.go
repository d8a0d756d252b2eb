package appointments

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
	appointmentUsecaseInstance AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentHisClient contracts.AppointmentHisClient
	PatientHisClient     contracts.PatientHisClient
	UserHisClient        contracts.UserHisClient
	Log                  *zap.Logger
}

func NewAppointmentUsecase(
	appointmentHisClient contracts.AppointmentHisClient,
	patientHisClient contracts.PatientHisClient,
	userHisClient contracts.UserHisClient,
	logger *zap.Logger,
) AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentHisClient: appointmentHisClient,
			PatientHisClient:     patientHisClient,
			UserHisClient:        userHisClient,
			Log:                  logger,
		}
	})
	return appointmentUsecaseInstance
}

// Overview fetches the day's appointments together with the patient and
// doctor reference lists the scheduling form needs. All three fetches run
// concurrently and the page waits for every one of them.
func (uc *appointmentUsecase) Overview(ctx context.Context, token, date string) (*responses.AppointmentsPage, error) {
	page := &responses.AppointmentsPage{Date: date}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		appointmentList, err := uc.AppointmentHisClient.FindAll(groupCtx, token, date)
		if err != nil {
			return err
		}
		page.Appointments = appointmentList
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
	group.Go(func() error {
		doctorList, err := uc.UserHisClient.FindDoctors(groupCtx, token)
		if err != nil {
			return err
		}
		page.Doctors = doctorList
		return nil
	})

	if err := group.Wait(); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("appointmentUsecase.Overview fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return page, nil
}

func (uc *appointmentUsecase) Schedule(ctx context.Context, token string, request *requests.CreateAppointment) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	_, err := uc.AppointmentHisClient.Create(ctx, token, request)
	return err
}

func (uc *appointmentUsecase) SetStatus(ctx context.Context, token, appointmentID, status string) error {
	if status != constvars.AppointmentStatusScheduled &&
		status != constvars.AppointmentStatusCompleted &&
		status != constvars.AppointmentStatusCancelled {
		return exceptions.ErrInputValidation(nil, constvars.ErrClientUpdateAppointmentStatus)
	}
	return uc.AppointmentHisClient.UpdateStatus(ctx, token, appointmentID, status)
}
