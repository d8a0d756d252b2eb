package patients

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
	patientHisClientInstance contracts.PatientHisClient
	oncePatientHisClient     sync.Once
)

type patientHisClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewPatientHisClient(baseUrl string, logger *zap.Logger) contracts.PatientHisClient {
	oncePatientHisClient.Do(func() {
		patientHisClientInstance = &patientHisClient{
			BaseUrl: baseUrl + constvars.HisResourcePatients,
			Log:     logger,
		}
	})
	return patientHisClientInstance
}

func (c *patientHisClient) FindAll(ctx context.Context, token, search string) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := c.BaseUrl
	if search != "" {
		endpoint = fmt.Sprintf("%s?%s=%s", c.BaseUrl, constvars.QueryParamSearch, url.QueryEscape(search))
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientHisClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, utils.ReadHisError(resp, constvars.MethodGet, endpoint, constvars.ErrClientFetchPatients)
	}

	var patients []models.Patient
	if err := json.NewDecoder(resp.Body).Decode(&patients); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourcePatients)
	}

	c.Log.Info("patientHisClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientHisClient) FindByID(ctx context.Context, token, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, url.PathEscape(patientID))

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientHisClient.FindByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, utils.ReadHisError(resp, constvars.MethodGet, endpoint, constvars.ErrClientFetchPatientData)
	}

	patient := new(models.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patient); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourcePatients)
	}

	c.Log.Info("patientHisClient.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientHisClient) Create(ctx context.Context, token string, request *requests.CreatePatient) (*models.Patient, error) {
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
		c.Log.Error("patientHisClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, c.BaseUrl),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, utils.ReadHisError(resp, constvars.MethodPost, c.BaseUrl, constvars.ErrClientRegisterPatient)
	}

	patient := new(models.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patient); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourcePatients)
	}

	c.Log.Info("patientHisClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}
