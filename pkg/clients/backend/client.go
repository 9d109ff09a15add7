package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const calculatorConfigPath = "/calculator/config"

// Config holds the settings of the site backend client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	// RetryInterval is the wait before the first retry; later waits grow exponentially.
	RetryInterval time.Duration
}

// CalculatorConfigResponse mirrors the envelope returned by GET /calculator/config.
type CalculatorConfigResponse struct {
	Success bool            `json:"success"`
	Config  json.RawMessage `json:"config"`
	Error   string          `json:"error,omitempty"`
}

// StatusError reports a non-2xx answer from the backend.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend api error: code=%d, body=%s", e.Code, e.Body)
}

// APIClient is a resty-backed client of the site backend.
type APIClient struct {
	httpClient    *resty.Client
	maxRetries    uint64
	retryInterval time.Duration
	logger        *zap.Logger
}

// NewClient builds a backend API client using the provided configuration values.
func NewClient(cfg Config, logger *zap.Logger) *APIClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout)

	return &APIClient{
		httpClient:    restyClient,
		maxRetries:    uint64(cfg.MaxRetries),
		retryInterval: cfg.RetryInterval,
		logger:        logger,
	}
}

// CalculatorConfig fetches the calculator pricing envelope. Network failures and
// 5xx answers are retried with exponential backoff; 4xx answers and undecodable
// bodies fail immediately.
func (c *APIClient) CalculatorConfig(ctx context.Context) (*CalculatorConfigResponse, error) {
	var result *CalculatorConfigResponse
	attempt := 0

	operation := func() error {
		attempt++
		resp, err := c.httpClient.R().
			SetContext(ctx).
			Get(calculatorConfigPath)
		if err != nil {
			return fmt.Errorf("get calculator config: %w", err)
		}

		if resp.StatusCode() >= http.StatusInternalServerError {
			return &StatusError{Code: resp.StatusCode(), Body: truncate(resp.String())}
		}
		if resp.IsError() {
			return backoff.Permanent(&StatusError{Code: resp.StatusCode(), Body: truncate(resp.String())})
		}

		body := new(CalculatorConfigResponse)
		if err := json.Unmarshal(resp.Body(), body); err != nil {
			return backoff.Permanent(fmt.Errorf("decode calculator config: %w", err))
		}

		result = body
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryInterval
	policy.MaxInterval = 10 * time.Second
	policy.MaxElapsedTime = 0

	err := backoff.RetryNotify(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx),
		func(err error, next time.Duration) {
			c.logger.Warn("calculator config fetch failed, retrying",
				zap.Int("attempt", attempt),
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func truncate(s string) string {
	const limit = 256
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
