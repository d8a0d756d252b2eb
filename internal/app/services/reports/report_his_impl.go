package reports

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
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
	reportHisClientInstance contracts.ReportHisClient
	onceReportHisClient     sync.Once
)

type reportHisClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewReportHisClient(baseUrl string, logger *zap.Logger) contracts.ReportHisClient {
	onceReportHisClient.Do(func() {
		reportHisClientInstance = &reportHisClient{
			BaseUrl: baseUrl + constvars.HisResourceReports,
			Log:     logger,
		}
	})
	return reportHisClientInstance
}

func (c *reportHisClient) FindAll(ctx context.Context, token, patientID string) ([]models.Report, error) {
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
		c.Log.Error("reportHisClient.FindAll error sending HTTP request",
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

	var reportList []models.Report
	if err := json.NewDecoder(resp.Body).Decode(&reportList); err != nil {
		return nil, exceptions.ErrHisDecodeResponse(err, constvars.HisResourceReports)
	}

	c.Log.Info("reportHisClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(reportList)),
	)
	return reportList, nil
}
