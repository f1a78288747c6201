// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

// Package zoom implements the authenticated Zoom REST client consumed by
// the sync and reconciliation services.
package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"log/slog"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/logging"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// BaseURL is the base URL for the Zoom API.
	BaseURL = "https://api.zoom.us/v2"
	// AuthURL is the OAuth token endpoint.
	AuthURL = "https://zoom.us/oauth/token"
	// DefaultClientTimeout is the default HTTP client timeout.
	DefaultClientTimeout = 30 * time.Second

	DefaultMaxRetries        = 3
	DefaultInitialBackoff    = 1 * time.Second
	DefaultMaxBackoff        = 30 * time.Second
	DefaultBackoffMultiplier = 2.0
)

// Config holds the configuration for the Zoom client. Zoom server-to-server
// OAuth requires the account_credentials grant with an account ID.
type Config struct {
	AccountID    string
	ClientID     string
	ClientSecret string
	// Optional overrides, used by tests.
	BaseURL string
	AuthURL string
	Timeout time.Duration
	// Optional retry configuration.
	MaxRetries        int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
}

// Client is the authenticated Zoom API client.
type Client struct {
	httpClient  *http.Client
	config      Config
	oauthConfig *clientcredentials.Config
}

// Ensure Client satisfies the domain contract.
var _ domain.MeetingAPI = (*Client)(nil)

// NewClient creates a new Zoom API client.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = BaseURL
	}
	if config.AuthURL == "" {
		config.AuthURL = AuthURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = DefaultMaxRetries
	}
	if config.InitialBackoff == 0 {
		config.InitialBackoff = DefaultInitialBackoff
	}
	if config.MaxBackoff == 0 {
		config.MaxBackoff = DefaultMaxBackoff
	}
	if config.BackoffMultiplier == 0 {
		config.BackoffMultiplier = DefaultBackoffMultiplier
	}

	oauthConfig := &clientcredentials.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TokenURL:     config.AuthURL,
		EndpointParams: url.Values{
			"grant_type": []string{"account_credentials"},
			"account_id": []string{config.AccountID},
		},
		AuthStyle: oauth2.AuthStyleInParams,
	}

	return &Client{
		httpClient:  &http.Client{Timeout: config.Timeout},
		config:      config,
		oauthConfig: oauthConfig,
	}
}

// authenticatedClient returns an HTTP client that injects OAuth2 bearer
// tokens, refreshing them as needed.
func (c *Client) authenticatedClient(ctx context.Context) *http.Client {
	return &http.Client{
		Timeout: c.config.Timeout,
		Transport: &oauth2.Transport{
			Base:   http.DefaultTransport,
			Source: c.oauthConfig.TokenSource(ctx),
		},
	}
}

// shouldRetry reports whether an attempt outcome warrants another try:
// network errors, server errors and rate limiting retry; client errors do
// not.
func shouldRetry(statusCode int, err error) bool {
	if err != nil {
		return true
	}
	if statusCode >= http.StatusInternalServerError {
		return true
	}
	return statusCode == http.StatusTooManyRequests
}

// backoff returns the delay before retry attempt, with +-25% jitter to
// avoid thundering herds.
func (c *Client) backoff(attempt int) time.Duration {
	if attempt <= 0 {
		return c.config.InitialBackoff
	}
	d := float64(c.config.InitialBackoff) * math.Pow(c.config.BackoffMultiplier, float64(attempt))
	if time.Duration(d) > c.config.MaxBackoff {
		d = float64(c.config.MaxBackoff)
	}
	d += d * 0.25 * (rand.Float64()*2 - 1)
	if time.Duration(d) < c.config.InitialBackoff {
		return c.config.InitialBackoff
	}
	return time.Duration(d)
}

// doRequest performs an authenticated request with retries. The returned
// response may still carry a non-2xx status; endpoint methods decide what
// counts as success.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return nil, &domain.APIError{Message: "failed to marshal request body", Err: err}
		}
	}

	reqURL := c.config.BaseURL + path
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		var bodyReader io.Reader
		if jsonBody != nil {
			bodyReader = bytes.NewReader(jsonBody)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
		if err != nil {
			return nil, &domain.APIError{Message: "failed to create request", Err: err}
		}
		req.Header.Set("Content-Type", "application/json")

		slog.DebugContext(ctx, "making Zoom API request",
			"method", method, "path", path, "attempt", attempt+1, "max_retries", c.config.MaxRetries)

		start := time.Now()
		resp, err := c.authenticatedClient(ctx).Do(req)
		duration := time.Since(start)

		statusCode := 0
		if resp != nil {
			statusCode = resp.StatusCode
		}

		if err == nil && !shouldRetry(statusCode, nil) {
			slog.DebugContext(ctx, "Zoom API request completed",
				"method", method, "path", path, "status", statusCode, "duration", duration.String())
			return resp, nil
		}

		lastErr = err
		if attempt == c.config.MaxRetries && resp != nil {
			// Out of retries with a server-error response: hand the response
			// back so the endpoint method can produce a typed error from it.
			slog.ErrorContext(ctx, "Zoom API request failed after all retries",
				"method", method, "path", path, "status", statusCode,
				"attempts", attempt+1, logging.PriorityCritical())
			return resp, nil
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		if ctx.Err() != nil {
			return nil, &domain.APIError{Message: "request cancelled", Err: ctx.Err()}
		}

		if attempt < c.config.MaxRetries {
			wait := c.backoff(attempt)
			slog.WarnContext(ctx, "Zoom API request failed, retrying",
				"method", method, "path", path, "status", statusCode,
				"backoff", wait.String(), logging.ErrKey, err)
			select {
			case <-ctx.Done():
				return nil, &domain.APIError{Message: "request cancelled", Err: ctx.Err()}
			case <-time.After(wait):
			}
			continue
		}

		slog.ErrorContext(ctx, "Zoom API request failed after all retries",
			"method", method, "path", path,
			"attempts", attempt+1, logging.ErrKey, err, logging.PriorityCritical())
	}

	return nil, &domain.APIError{
		Message: fmt.Sprintf("request failed after %d attempts", c.config.MaxRetries+1),
		Err:     lastErr,
	}
}

// parseErrorResponse turns a Zoom error body into a typed API error.
func parseErrorResponse(statusCode int, body []byte) *domain.APIError {
	var errResp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &domain.APIError{StatusCode: statusCode, Code: errResp.Code, Message: errResp.Message}
	}
	return &domain.APIError{StatusCode: statusCode, Message: string(body)}
}

// drainError reads the response body and converts it into a typed error.
func drainError(resp *http.Response) *domain.APIError {
	body, _ := io.ReadAll(resp.Body)
	return parseErrorResponse(resp.StatusCode, body)
}
