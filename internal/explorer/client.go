// Package explorer implements a client for the blockchain.info explorer API.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockharvest/internal/clock"
)

// DefaultBaseURL is the public explorer endpoint.
const DefaultBaseURL = "https://blockchain.info"

const (
	defaultTimeout       = 30 * time.Second
	defaultRetryInterval = time.Second
	maxBodySize          = 64 << 20
	maxRetryAfter        = 2 * time.Minute
	maxErrorMessage      = 256
)

// Client fetches day listings and raw blocks from the explorer API.
type Client struct {
	httpClient    *http.Client
	baseURL       *url.URL
	limiter       ratelimit.Limiter
	metrics       Metrics
	logger        *zap.Logger
	maxRetries    uint64
	retryInterval time.Duration
	sleep         clock.SleepFunc
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the per-request timeout. The HTTP client is copied, so a client
// passed through WithHTTPClient is left untouched.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			hc := *c.httpClient
			hc.Timeout = timeout
			c.httpClient = &hc
		}
	}
}

// WithRateLimit caps outgoing requests per second. A non-positive rps disables the limit.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = ratelimit.New(rps)
		} else {
			c.limiter = ratelimit.NewUnlimited()
		}
	}
}

// WithRetries sets how many times a failed request is repeated and the first backoff interval.
func WithRetries(maxRetries uint64, interval time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		if interval > 0 {
			c.retryInterval = interval
		}
	}
}

// NewClient creates a Client for the explorer at baseURL.
func NewClient(baseURL string, metrics Metrics, logger *zap.Logger, opts ...Option) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("explorer metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse explorer url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("explorer url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("explorer url missing host")
	}

	c := &Client{
		httpClient:    &http.Client{Timeout: defaultTimeout},
		baseURL:       parsed,
		limiter:       ratelimit.NewUnlimited(),
		metrics:       metrics,
		logger:        logger.Named("explorer"),
		retryInterval: defaultRetryInterval,
		sleep:         clock.SleepWithContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) get(ctx context.Context, operation, resource string, query url.Values) ([]byte, error) {
	target := c.baseURL.JoinPath(resource)
	target.RawQuery = query.Encode()

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(backoff.WithInitialInterval(c.retryInterval)), c.maxRetries),
		ctx,
	)

	attempt := func() ([]byte, error) {
		body, err := c.do(ctx, resource, target.String())
		if err == nil {
			return body, nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.Retryable() {
			return nil, backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	notify := func(err error, next time.Duration) {
		c.metrics.ObserveRetry(operation)
		c.logger.Warn("explorer request failed, retrying",
			zap.String("resource", resource),
			zap.Duration("next_try", next),
			zap.Error(err),
		)
	}

	return backoff.RetryNotifyWithData(attempt, policy, notify)
}

func (c *Client) do(ctx context.Context, resource, target string) ([]byte, error) {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", resource, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", resource, err)
	}
	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	apiErr := newAPIError(resource, resp.StatusCode, body)
	if resp.StatusCode == http.StatusTooManyRequests {
		if wait := retryAfter(resp.Header.Get("Retry-After")); wait > 0 {
			if err := c.sleep(ctx, wait); err != nil {
				return nil, fmt.Errorf("wait for rate limit on %s: %w", resource, err)
			}
		}
	}
	return nil, apiErr
}

func newAPIError(resource string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{Resource: resource, StatusCode: statusCode}

	var payload errorDTO
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
		if payload.StatusCode != 0 {
			apiErr.StatusCode = payload.StatusCode
		}
		return apiErr
	}

	message := strings.TrimSpace(string(body))
	if len(message) > maxErrorMessage {
		message = message[:maxErrorMessage]
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}
	apiErr.Message = message
	return apiErr
}

func retryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return min(time.Duration(seconds)*time.Second, maxRetryAfter)
	}
	if at, err := http.ParseTime(header); err == nil {
		return min(time.Until(at), maxRetryAfter)
	}
	return 0
}
