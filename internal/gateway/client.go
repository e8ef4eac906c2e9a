// Package gateway talks to the external payment gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
)

const paymentsPath = "/v1/payments"

// statusError is a non-2xx answer from the gateway.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("gateway responded %d: %s", e.code, e.body)
}

type Options struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	Attempts uint
	// Delay is the first backoff between attempts.
	Delay time.Duration
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	retry   []retry.Option
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Attempts == 0 {
		opts.Attempts = 3
	}
	if opts.Delay <= 0 {
		opts.Delay = 200 * time.Millisecond
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		http:    &http.Client{Timeout: opts.Timeout},
		retry: []retry.Option{
			retry.Attempts(opts.Attempts),
			retry.Delay(opts.Delay),
			retry.MaxDelay(5 * time.Second),
			retry.DelayType(retry.BackOffDelay),
			retry.LastErrorOnly(true),
			retry.RetryIf(isTransient),
		},
	}
}

// RequestPayment registers the payment with the gateway. Network errors and
// 5xx answers are retried; a 4xx answer is final.
func (c *Client) RequestPayment(ctx context.Context, req domain.GatewayRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode gateway request: %w", err)
	}

	logger.ExternalServiceCall("payment_gateway", "RequestPayment", "transactionID", req.TransactionID)
	opts := append([]retry.Option{
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug("Retrying gateway request", "transactionID", req.TransactionID, "attempt", n+1, "error", err)
		}),
	}, c.retry...)
	err = retry.Do(func() error { return c.post(ctx, body) }, opts...)
	logger.ExternalServiceResult("payment_gateway", "RequestPayment", err, "transactionID", req.TransactionID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGatewayFailure, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, body []byte) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+paymentsPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.SetBasicAuth(c.apiKey, "")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(msg))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func isTransient(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusTooManyRequests
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
