package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Finz-2025/finz-coach/internal/client/models"
	"github.com/Finz-2025/finz-coach/internal/common"
	"github.com/Finz-2025/finz-coach/internal/logging"
)

const (
	DefaultTimeout = 10 * time.Second

	opHistory        = "history"
	opSendMessage    = "send_message"
	opGoalConsult    = "goal_consult"
	opExpenseConsult = "expense_consult"

	// maxLoggedBody caps request/response bodies in debug logs.
	maxLoggedBody = 2048
)

// HTTPClient talks to the Coach API over HTTP with JSON bodies. Every
// request carries the static access token under the configured header.
type HTTPClient struct {
	baseURL     string
	accessToken string
	tokenHeader string
	httpClient  *http.Client
	log         logging.Logger
	metrics     *Metrics
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithTokenHeader overrides the access token header name.
func WithTokenHeader(name string) Option {
	return func(c *HTTPClient) {
		if name != "" {
			c.tokenHeader = name
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l.With("component", "api")
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "https://finz-site.shop/api".
func NewHTTPClient(baseURL, accessToken string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		tokenHeader: common.AccessTokenHeaderName,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		log:         logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ CoachClient = (*HTTPClient)(nil)

// History fetches the full conversation. Both a bare JSON array and a
// {"data": [...]} envelope are accepted.
func (c *HTTPClient) History(ctx context.Context, userID int64) ([]models.HistoryRecord, error) {
	var raw json.RawMessage
	if err := c.do(ctx, opHistory, http.MethodGet, userPath("/coach/history/", userID), nil, &raw); err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []models.HistoryRecord{}, nil
	}

	var records []models.HistoryRecord
	if raw[0] == '{' {
		var env struct {
			Data []models.HistoryRecord `json:"data"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
		records = env.Data
	} else if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	if records == nil {
		records = []models.HistoryRecord{}
	}
	return records, nil
}

// SendMessage validates and posts req.
func (c *HTTPClient) SendMessage(ctx context.Context, userID int64, req models.SendRequest) (models.SendResponse, error) {
	if err := req.Validate(); err != nil {
		return models.SendResponse{}, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}

	var resp models.SendResponse
	if err := c.do(ctx, opSendMessage, http.MethodPost, userPath("/coach/message/", userID), req, &resp); err != nil {
		return models.SendResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) StartGoalConsult(ctx context.Context, userID int64) (models.ModeStart, error) {
	return c.startMode(ctx, opGoalConsult, userPath("/coach/goal-consult/", userID))
}

func (c *HTTPClient) StartExpenseConsult(ctx context.Context, userID int64) (models.ModeStart, error) {
	return c.startMode(ctx, opExpenseConsult, userPath("/coach/expense-consult/", userID))
}

func (c *HTTPClient) startMode(ctx context.Context, op, path string) (models.ModeStart, error) {
	var env struct {
		Status  int              `json:"status"`
		Success *bool            `json:"success"`
		Message string           `json:"message"`
		Data    models.ModeStart `json:"data"`
	}
	if err := c.do(ctx, op, http.MethodPost, path, nil, &env); err != nil {
		return models.ModeStart{}, err
	}
	if env.Success != nil && !*env.Success {
		return models.ModeStart{}, &APIError{StatusCode: env.Status, Body: env.Message}
	}
	return env.Data, nil
}

// do performs one round trip. A nil body sends no payload; a nil out
// discards the response.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	started := time.Now()
	defer func() { c.metrics.observe(op, started, err) }()

	var payload []byte
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set(c.tokenHeader, c.accessToken)
	}

	reqID := uuid.NewString()
	log := c.log.With("op", op, "request_id", reqID)
	log.Debug(ctx, "coach api request", "method", method, "url", req.URL.String(), "body", clip(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "coach api transport error", "error", err)
		return mapError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return mapError(fmt.Errorf("read %s response: %w", op, err))
	}

	log.Debug(ctx, "coach api response",
		"status", resp.StatusCode,
		"elapsed", time.Since(started),
		"body", clip(data),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func userPath(prefix string, userID int64) string {
	return prefix + strconv.FormatInt(userID, 10)
}

func clip(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "…"
	}
	return string(b)
}
