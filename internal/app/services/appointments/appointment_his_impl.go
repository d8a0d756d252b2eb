package appointments

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
	appointmentHisClientInstance contracts.AppointmentHisClient
	onceAppointmentHisClient     sync.Once
)

type appointmentHisClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewAppointmentHisClient(baseUrl string, logger *zap.Logger) contracts.AppointmentHisClient {
	onceAppointmentHisClient.Do(func() {
		appointmentHisClientInstance = &appointmentHisClient{
			BaseUrl: baseUrl + constvars.HisResourceAppointments,
			Log:     logger,
		}
	})
	return appointmentHisClientInstance
}

func (c *appointmentHisClient) FindAll(ctx context.Context, token, date string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := c.BaseUrl
	if date != "" {
		endpoint = fmt.Sprintf("%s?%s=%s", c.BaseUrl, constvars.QueryParamDate, url.QueryEscape(date))
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentHisClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, utils.ReadHisError(resp, constvars.MethodGet, endpoint, constvars.ErrClientFetchAppointments)
	}

	var appointmentList []models.Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointmentList); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceAppointments)
	}

	c.Log.Info("appointmentHisClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointmentList)),
	)
	return appointmentList, nil
}

func (c *appointmentHisClient) Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
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
		c.Log.Error("appointmentHisClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, c.BaseUrl),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, utils.ReadHisError(resp, constvars.MethodPost, c.BaseUrl, constvars.ErrClientScheduleAppointment)
	}

	appointment := new(models.Appointment)
	if err := json.NewDecoder(resp.Body).Decode(appointment); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceAppointments)
	}

	c.Log.Info("appointmentHisClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return appointment, nil
}

func (c *appointmentHisClient) UpdateStatus(ctx context.Context, token, appointmentID, status string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := fmt.Sprintf("%s/%s/status?%s=%s", c.BaseUrl, url.PathEscape(appointmentID), constvars.QueryParamStatus, url.QueryEscape(status))

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, endpoint, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentHisClient.UpdateStatus error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return utils.ReadHisError(resp, constvars.MethodPatch, endpoint, constvars.ErrClientUpdateAppointmentStatus)
	}

	c.Log.Info("appointmentHisClient.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHisUrlKey, endpoint),
	)
	return nil
}
