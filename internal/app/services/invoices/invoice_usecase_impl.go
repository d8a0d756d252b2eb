package invoices

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
	invoiceUsecaseInstance InvoiceUsecase
	onceInvoiceUsecase     sync.Once
)

type invoiceUsecase struct {
	InvoiceHisClient contracts.InvoiceHisClient
	PatientHisClient contracts.PatientHisClient
	Log              *zap.Logger
}

func NewInvoiceUsecase(invoiceHisClient contracts.InvoiceHisClient, patientHisClient contracts.PatientHisClient, logger *zap.Logger) InvoiceUsecase {
	onceInvoiceUsecase.Do(func() {
		invoiceUsecaseInstance = &invoiceUsecase{
			InvoiceHisClient: invoiceHisClient,
			PatientHisClient: patientHisClient,
			Log:              logger,
		}
	})
	return invoiceUsecaseInstance
}

func (uc *invoiceUsecase) Overview(ctx context.Context, token string) (*responses.BillingPage, error) {
	page := new(responses.BillingPage)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		invoiceList, err := uc.InvoiceHisClient.FindAll(groupCtx, token)
		if err != nil {
			return err
		}
		page.Invoices = invoiceList
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
		uc.Log.Error("invoiceUsecase.Overview fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return page, nil
}

func (uc *invoiceUsecase) Create(ctx context.Context, token string, request *requests.CreateInvoice) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	_, err := uc.InvoiceHisClient.Create(ctx, token, request)
	return err
}
