package encounters

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
	encounterHisClientInstance contracts.EncounterHisClient
	onceEncounterHisClient     sync.Once
)

type encounterHisClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewEncounterHisClient(baseUrl string, logger *zap.Logger) contracts.EncounterHisClient {
	onceEncounterHisClient.Do(func() {
		encounterHisClientInstance = &encounterHisClient{
			BaseUrl: baseUrl + constvars.HisResourceEncounters,
			Log:     logger,
		}
	})
	return encounterHisClientInstance
}

func (c *encounterHisClient) FindAll(ctx context.Context, token, patientID string) ([]models.Encounter, error) {
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
		c.Log.Error("encounterHisClient.FindAll error sending HTTP request",
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

	var encounterList []models.Encounter
	if err := json.NewDecoder(resp.Body).Decode(&encounterList); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceEncounters)
	}

	c.Log.Info("encounterHisClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(encounterList)),
	)
	return encounterList, nil
}

func (c *encounterHisClient) Create(ctx context.Context, token string, request *requests.CreateEncounter) (*models.Encounter, error) {
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
		c.Log.Error("encounterHisClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, c.BaseUrl),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, utils.ReadHisError(resp, constvars.MethodPost, c.BaseUrl, constvars.ErrClientSaveConsultationNotes)
	}

	encounter := new(models.Encounter)
	if err := json.NewDecoder(resp.Body).Decode(encounter); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceEncounters)
	}

	c.Log.Info("encounterHisClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, encounter.PatientID),
	)
	return encounter, nil
}
