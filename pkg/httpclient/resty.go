package httpclient

import (
	"context"
	"time"

	"crypto-analysis/pkg/logger"

	"github.com/go-resty/resty/v2"
)

type RestyClient struct {
	client *resty.Client
}

// New builds a client bound to baseURL. Every request is capped by timeout
// and carries headers; retries are left disabled.
func New(log *logger.Logger, baseURL string, timeout time.Duration, headers map[string]string) HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeaders(headers).
		OnAfterResponse(func(c *resty.Client, r *resty.Response) error {
			log.Debug("Outbound request completed",
				logger.StringField("method", r.Request.Method),
				logger.StringField("url", r.Request.URL),
				logger.IntField("status_code", r.StatusCode()),
				logger.StringField("duration", r.Time().String()),
			)
			return nil
		})

	return &RestyClient{client: client}
}

// GET request with optional query params
func (rc *RestyClient) Get(ctx context.Context, endpoint string, queryParams map[string]string, headers map[string]string, result interface{}) (*BaseResponse, error) {
	req := rc.client.R().SetContext(ctx).SetResult(result)

	if queryParams != nil {
		req.SetQueryParams(queryParams)
	}

	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return nil, err
	}
	return &BaseResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Headers:    resp.Header(),
	}, nil
}
