package recorders

import (
	"context"
	"fmt"
	"time"

	"github.com/Kariqs/bakebites/models"
	"github.com/go-resty/resty/v2"
)

// WebhookRecorder posts orders to a spreadsheet-backed REST endpoint that
// takes rows as {"data": [{column: value}]}.
type WebhookRecorder struct {
	client *resty.Client
	url    string
	token  string
}

func NewWebhookRecorder(endpoint, token string, timeout time.Duration) (*WebhookRecorder, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("webhook url is not set")
	}
	return &WebhookRecorder{
		client: resty.New().SetTimeout(timeout),
		url:    endpoint,
		token:  token,
	}, nil
}

func (r *WebhookRecorder) request(ctx context.Context) *resty.Request {
	req := r.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if r.token != "" {
		req.SetAuthToken(r.token)
	}
	return req
}

func (r *WebhookRecorder) Record(ctx context.Context, order models.OrderRecord) error {
	resp, err := r.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"data": []map[string]any{order.Fields()},
		}).
		Post(r.url)
	if err != nil {
		return fmt.Errorf("webhook post failed: %w", err)
	}
	if !resp.IsSuccess() {
		return &RejectedError{Service: "webhook", StatusCode: resp.StatusCode(), Body: truncate(resp.Body())}
	}
	return nil
}

func (r *WebhookRecorder) Ping(ctx context.Context) error {
	resp, err := r.request(ctx).Get(r.url)
	if err != nil {
		return fmt.Errorf("webhook check failed: %w", err)
	}
	if !resp.IsSuccess() {
		return &RejectedError{Service: "webhook", StatusCode: resp.StatusCode(), Body: truncate(resp.Body())}
	}
	return nil
}
