package auth

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"gangosri-portal/internal/app/contracts"
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
	"gangosri-portal/internal/pkg/exceptions"
	"gangosri-portal/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authHisClientInstance contracts.AuthHisClient
	onceAuthHisClient     sync.Once
)

type authHisClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewAuthHisClient(baseUrl string, logger *zap.Logger) contracts.AuthHisClient {
	onceAuthHisClient.Do(func() {
		authHisClientInstance = &authHisClient{
			BaseUrl: baseUrl,
			Log:     logger,
		}
	})
	return authHisClientInstance
}

func (c *authHisClient) Login(ctx context.Context, request *requests.Login) (*responses.Token, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := c.BaseUrl + constvars.HisResourceLogin

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("authHisClient.Login error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, url),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		// A login rejection is not an expired session, so the 401 shortcut
		// in ReadHisError must not kick in here.
		if resp.StatusCode == constvars.StatusUnauthorized {
			return nil, exceptions.ErrHisRequest(constvars.StatusBadRequest, constvars.ErrClientLoginFailed, constvars.MethodPost, url)
		}
		return nil, utils.ReadHisError(resp, constvars.MethodPost, url, constvars.ErrClientLoginFailed)
	}

	token := new(responses.Token)
	if err := json.NewDecoder(resp.Body).Decode(token); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceLogin)
	}

	c.Log.Info("authHisClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserRoleKey, token.User.Role),
	)
	return token, nil
}

func (c *authHisClient) Register(ctx context.Context, token string, request *requests.RegisterUser) (*models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := c.BaseUrl + constvars.HisResourceRegister

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("authHisClient.Register error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, url),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, utils.ReadHisError(resp, constvars.MethodPost, url, constvars.ErrClientCreateUser)
	}

	user := new(models.UserProfile)
	if err := json.NewDecoder(resp.Body).Decode(user); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceRegister)
	}

	c.Log.Info("authHisClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserRoleKey, user.Role),
	)
	return user, nil
}
