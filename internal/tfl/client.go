// Package tfl fetches line disruptions from the TfL unified API.
package tfl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fr0stylo/tflwatch/internal/app/domain"
	"github.com/fr0stylo/tflwatch/internal/app/ports"
	"github.com/fr0stylo/tflwatch/internal/observability"
)

const (
	DefaultBaseURL = "https://api.tfl.gov.uk"
	DefaultTimeout = 5 * time.Second

	// Modes is queried on every run; it is not configurable.
	Modes = "tube, dlr"

	appKeyHeader = "app_key"
	// Error bodies longer than this are stored truncated.
	maxErrorBody = 64 << 10
)

// Client performs one disruption request per Fetch call and never retries.
type Client struct {
	BaseURL    string
	AppKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Now        func() time.Time
}

// NewClient builds a client whose transport emits client spans.
func NewClient(baseURL, appKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		AppKey:  appKey,
		Timeout: timeout,
		HTTPClient: &http.Client{
			Transport: observability.InstrumentTransport(nil),
		},
	}
}

// DisruptionURL returns the endpoint for the fixed mode set.
func DisruptionURL(baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return baseURL + "/Line/Mode/" + url.PathEscape(Modes) + "/Disruption"
}

// Fetch issues the request and classifies the outcome. ObservedAt is taken
// once, right after the response arrives or the failure is detected.
func (c *Client) Fetch(ctx context.Context) domain.FetchResult {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, DisruptionURL(c.BaseURL), nil)
	if err != nil {
		return c.transportError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set(appKeyHeader, c.AppKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient(timeout).Do(req)
	if err != nil {
		return c.transportError(fmt.Errorf("send request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()
	observedAt := c.now()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.FetchResult{
			Status:     domain.FetchHTTPError,
			HTTPCode:   resp.StatusCode,
			ErrorText:  string(payload),
			ObservedAt: observedAt,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.FetchResult{
			Status:     domain.FetchTransportError,
			ErrorText:  fmt.Sprintf("read response body: %v", err),
			ObservedAt: observedAt,
		}
	}

	messages, err := DecodeMessages(body)
	if err != nil {
		return domain.FetchResult{
			Status:     domain.FetchMalformedResponse,
			HTTPCode:   resp.StatusCode,
			ErrorText:  err.Error(),
			ObservedAt: observedAt,
		}
	}

	return domain.FetchResult{
		Status:     domain.FetchSuccess,
		HTTPCode:   resp.StatusCode,
		Messages:   messages,
		ObservedAt: observedAt,
	}
}

// DecodeMessages splits a JSON array body into its object elements.
func DecodeMessages(body []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("malformed response body: expected JSON array: %w", err)
	}
	if items == nil {
		return nil, errors.New("malformed response body: expected JSON array, got null")
	}
	for i, item := range items {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("malformed response body: element %d is not a JSON object", i)
		}
		items[i] = trimmed
	}
	return items, nil
}

func (c *Client) transportError(err error) domain.FetchResult {
	return domain.FetchResult{
		Status:     domain.FetchTransportError,
		ErrorText:  err.Error(),
		ObservedAt: c.now(),
	}
}

func (c *Client) httpClient(timeout time.Duration) *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: timeout}
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return domain.ObservedNow(c.Now())
	}
	return domain.ObservedNow(time.Now())
}

var _ ports.DisruptionFetcher = (*Client)(nil)
