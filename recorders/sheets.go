package recorders

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Kariqs/bakebites/models"
	"github.com/go-resty/resty/v2"
)

const defaultSheetsURL = "https://sheets.googleapis.com"

type SheetsConfig struct {
	SpreadsheetID string
	Range         string
	Account       *ServiceAccount
	Timeout       time.Duration
	// BaseURL overrides the Sheets API host.
	BaseURL string
}

// SheetsRecorder appends each order as one row of a Google Sheet.
type SheetsRecorder struct {
	client        *resty.Client
	tokens        *tokenSource
	spreadsheetID string
	sheetRange    string
}

func NewSheetsRecorder(cfg SheetsConfig) (*SheetsRecorder, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is not set")
	}
	if cfg.Account == nil {
		return nil, fmt.Errorf("service account is not set")
	}
	if cfg.Range == "" {
		cfg.Range = "Sheet1"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultSheetsURL
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetBaseURL(cfg.BaseURL)

	return &SheetsRecorder{
		client:        client,
		tokens:        newTokenSource(cfg.Account, resty.New().SetTimeout(cfg.Timeout)),
		spreadsheetID: cfg.SpreadsheetID,
		sheetRange:    cfg.Range,
	}, nil
}

func (r *SheetsRecorder) Record(ctx context.Context, order models.OrderRecord) error {
	token, err := r.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("sheets authentication failed: %w", err)
	}

	endpoint := fmt.Sprintf("/v4/spreadsheets/%s/values/%s:append",
		url.PathEscape(r.spreadsheetID), url.PathEscape(r.sheetRange))

	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"valueInputOption": "USER_ENTERED",
			"insertDataOption": "INSERT_ROWS",
		}).
		SetBody(map[string]any{
			"majorDimension": "ROWS",
			"values":         [][]any{order.Row()},
		}).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("sheets append failed: %w", err)
	}
	if !resp.IsSuccess() {
		return &RejectedError{Service: "sheets", StatusCode: resp.StatusCode(), Body: truncate(resp.Body())}
	}
	return nil
}

// Ping checks that the service account can read the spreadsheet.
func (r *SheetsRecorder) Ping(ctx context.Context) error {
	token, err := r.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("sheets authentication failed: %w", err)
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("fields", "spreadsheetId").
		Get("/v4/spreadsheets/" + url.PathEscape(r.spreadsheetID))
	if err != nil {
		return fmt.Errorf("sheets lookup failed: %w", err)
	}
	if !resp.IsSuccess() {
		return &RejectedError{Service: "sheets", StatusCode: resp.StatusCode(), Body: truncate(resp.Body())}
	}
	return nil
}
