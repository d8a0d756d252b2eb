package users

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
	userHisClientInstance contracts.UserHisClient
	onceUserHisClient     sync.Once
)

type userHisClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewUserHisClient(baseUrl string, logger *zap.Logger) contracts.UserHisClient {
	onceUserHisClient.Do(func() {
		userHisClientInstance = &userHisClient{
			BaseUrl: baseUrl,
			Log:     logger,
		}
	})
	return userHisClientInstance
}

func (c *userHisClient) FindAll(ctx context.Context, token string) ([]models.UserProfile, error) {
	return c.find(ctx, token, c.BaseUrl+constvars.HisResourceUsers)
}

func (c *userHisClient) FindDoctors(ctx context.Context, token string) ([]models.UserProfile, error) {
	return c.find(ctx, token, c.BaseUrl+constvars.HisResourceDoctors)
}

func (c *userHisClient) find(ctx context.Context, token, endpoint string) ([]models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("userHisClient.find error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, utils.ReadHisError(resp, constvars.MethodGet, endpoint, constvars.ErrClientFetchUsers)
	}

	var userList []models.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&userList); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceUsers)
	}

	c.Log.Info("userHisClient.find succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHisUrlKey, endpoint),
		zap.Int(constvars.LoggingCountKey, len(userList)),
	)
	return userList, nil
}

func (c *userHisClient) UpdateStatus(ctx context.Context, token, userID string, request *requests.UpdateUserStatus) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := fmt.Sprintf("%s%s/%s/status", c.BaseUrl, constvars.HisResourceUsers, url.PathEscape(userID))

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("userHisClient.UpdateStatus error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return utils.ReadHisError(resp, constvars.MethodPatch, endpoint, constvars.ErrClientUpdateUserStatus)
	}

	c.Log.Info("userHisClient.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHisUrlKey, endpoint),
	)
	return nil
}
