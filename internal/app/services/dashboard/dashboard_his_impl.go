package dashboard

import (
	"context"
	"net/http"
	"sync"

	"gangosri-portal/internal/app/contracts"
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/exceptions"
	"gangosri-portal/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	dashboardHisClientInstance contracts.DashboardHisClient
	onceDashboardHisClient     sync.Once
)

type dashboardHisClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewDashboardHisClient(baseUrl string, logger *zap.Logger) contracts.DashboardHisClient {
	onceDashboardHisClient.Do(func() {
		dashboardHisClientInstance = &dashboardHisClient{
			BaseUrl: baseUrl + constvars.HisResourceDashboardStats,
			Log:     logger,
		}
	})
	return dashboardHisClientInstance
}

// Stats returns whatever counters the HIS backend computed for the caller's
// role. The portal does not reinterpret them; absent fields stay zero.
func (c *dashboardHisClient) Stats(ctx context.Context, token string) (*models.DashboardStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("dashboardHisClient.Stats error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHisUrlKey, c.BaseUrl),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, utils.ReadHisError(resp, constvars.MethodGet, c.BaseUrl, constvars.ErrClientFetchDashboardStats)
	}

	stats := new(models.DashboardStats)
	if err := json.NewDecoder(resp.Body).Decode(stats); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceDashboardStats)
	}

	c.Log.Info("dashboardHisClient.Stats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return stats, nil
}
