// Package tracker provides the Solana Tracker data API client and the
// tool dispatcher that maps MCP tool invocations onto upstream requests.
package tracker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/solanatracker/solana-data-mcp-server/internal/apierr"
	"github.com/solanatracker/solana-data-mcp-server/metrics"
	"github.com/solanatracker/solana-data-mcp-server/tracing"
)

// Client handles communication with the Solana Tracker data API.
// Each invocation issues exactly one outbound GET; there is no cache,
// no retry, and no shared mutable state between calls.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Solana Tracker client
func NewClient(config *Config, logger *slog.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// BaseURL returns the configured API endpoint
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// get performs a single GET against the data API and returns the raw
// response body. Non-200 statuses and transport failures both surface as
// *apierr.UpstreamError; the body is never reshaped. endpoint is the
// unsubstituted path template, used as a low-cardinality metrics label.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values) (json.RawMessage, error) {
	ctx, span := tracing.StartSpan(ctx, "tracker.api.get")
	defer span.End()
	tracing.AddUpstreamAttributes(span, endpoint, 0)

	reqURL := c.config.BaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &apierr.InternalError{Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("x-api-key", c.config.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordUpstreamCall(endpoint, duration, 0)
		tracing.RecordError(span, err)
		c.logger.Warn("Upstream request failed", "endpoint", endpoint, "error", err)
		return nil, &apierr.UpstreamError{Message: err.Error()}
	}

	tracing.AddUpstreamAttributes(span, endpoint, resp.StatusCode)

	body, err := readAndClose(resp)
	if err != nil {
		metrics.RecordUpstreamCall(endpoint, duration, resp.StatusCode)
		return nil, &apierr.UpstreamError{Status: resp.StatusCode, Message: err.Error()}
	}

	metrics.RecordUpstreamCall(endpoint, duration, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if len(body) > 0 {
			msg = truncate(string(body), 500)
		}
		c.logger.Warn("Upstream returned error status",
			"endpoint", endpoint,
			"status", resp.StatusCode,
		)
		return nil, &apierr.UpstreamError{Status: resp.StatusCode, Message: msg}
	}

	metrics.RecordResponseSize(endpoint, len(body))
	return json.RawMessage(body), nil
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
