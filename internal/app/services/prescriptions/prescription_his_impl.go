package prescriptions

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
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
	prescriptionHisClientInstance contracts.PrescriptionHisClient
	oncePrescriptionHisClient     sync.Once
)

type prescriptionHisClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewPrescriptionHisClient(baseUrl string, logger *zap.Logger) contracts.PrescriptionHisClient {
	oncePrescriptionHisClient.Do(func() {
		prescriptionHisClientInstance = &prescriptionHisClient{
			BaseUrl: baseUrl + constvars.HisResourcePrescriptions,
			Log:     logger,
		}
	})
	return prescriptionHisClientInstance
}

func (c *prescriptionHisClient) FindAll(ctx context.Context, token, patientID string) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := c.BaseUrl
	if patientID != "" {
		endpoint = fmt.Sprintf("%s?%s=%s", c.BaseUrl, constvars.QueryParamPatientID, url.QueryEscape(patientID))
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("prescriptionHisClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, utils.ReadHisError(resp, constvars.MethodGet, endpoint, constvars.ErrClientFetchData)
	}

	var prescriptionList []models.Prescription
	if err := json.NewDecoder(resp.Body).Decode(&prescriptionList); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourcePrescriptions)
	}

	c.Log.Info("prescriptionHisClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(prescriptionList)),
	)
	return prescriptionList, nil
}

func (c *prescriptionHisClient) Create(ctx context.Context, token string, request *requests.CreatePrescription) (*models.Prescription, error) {
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
		c.Log.Error("prescriptionHisClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, c.BaseUrl),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, utils.ReadHisError(resp, constvars.MethodPost, c.BaseUrl, constvars.ErrClientCreatePrescription)
	}

	prescription := new(models.Prescription)
	if err := json.NewDecoder(resp.Body).Decode(prescription); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourcePrescriptions)
	}

	c.Log.Info("prescriptionHisClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, prescription.PatientID),
	)
	return prescription, nil
}
