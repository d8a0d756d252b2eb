package invoices

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"gangosri-portal/internal/app/contracts"
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/exceptions"
	"gangosri-portal/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	invoiceHisClientInstance contracts.InvoiceHisClient
	onceInvoiceHisClient     sync.Once
)

type invoiceHisClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewInvoiceHisClient(baseUrl string, logger *zap.Logger) contracts.InvoiceHisClient {
	onceInvoiceHisClient.Do(func() {
		invoiceHisClientInstance = &invoiceHisClient{
			BaseUrl: baseUrl + constvars.HisResourceInvoices,
			Log:     logger,
		}
	})
	return invoiceHisClientInstance
}

func (c *invoiceHisClient) FindAll(ctx context.Context, token string) ([]models.Invoice, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("invoiceHisClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, c.BaseUrl),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, utils.ReadHisError(resp, constvars.MethodGet, c.BaseUrl, constvars.ErrClientFetchData)
	}

	var invoiceList []models.Invoice
	if err := json.NewDecoder(resp.Body).Decode(&invoiceList); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceInvoices)
	}

	c.Log.Info("invoiceHisClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(invoiceList)),
	)
	return invoiceList, nil
}

func (c *invoiceHisClient) Create(ctx context.Context, token string, request *requests.CreateInvoice) (*models.Invoice, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("invoiceHisClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, c.BaseUrl),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, utils.ReadHisError(resp, constvars.MethodPost, c.BaseUrl, constvars.ErrClientCreateInvoice)
	}

	invoice := new(models.Invoice)
	if err := json.NewDecoder(resp.Body).Decode(invoice); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceInvoices)
	}

	c.Log.Info("invoiceHisClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, invoice.PatientID),
	)
	return invoice, nil
}
