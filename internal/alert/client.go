package alert

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/fulfillment-audit/internal/types"
)

var ErrUnexpectedStatus = errors.New("unexpected webhook status")

type Payload struct {
	WindowStart time.Time     `json:"window_start"`
	WindowEnd   time.Time     `json:"window_end"`
	Count       int           `json:"count"`
	Unfulfilled []types.Order `json:"unfulfilled"`
}

// WebhookClient posts unfulfilled orders to an alerting webhook.
type WebhookClient struct {
	url    string
	secret []byte
	client *resty.Client
	now    func() time.Time
}

func NewWebhookClient(url string, secret string, retries int) *WebhookClient {
	client := resty.New().
		SetRetryCount(retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		SetTimeout(10 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &WebhookClient{
		url:    url,
		secret: []byte(secret),
		client: client,
		now:    time.Now,
	}
}

func (c *WebhookClient) NotifyUnfulfilled(ctx context.Context, windowStart time.Time, windowEnd time.Time, orders []types.Order) error {

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(Payload{
			WindowStart: windowStart,
			WindowEnd:   windowEnd,
			Count:       len(orders),
			Unfulfilled: orders,
		})

	if len(c.secret) > 0 {
		token, err := BuildJWTString(len(orders), c.secret, c.now())
		if err != nil {
			return fmt.Errorf("signing webhook token %w", err)
		}
		req.SetAuthToken(token)
	}

	resp, err := req.Post(c.url)
	if err != nil {
		return fmt.Errorf("webhook request failed %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	logger.Infof("Sent alert for [%d] unfulfilled order(s)", len(orders))
	return nil
}
