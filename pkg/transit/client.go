package transit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultEndpoint is the HSL routing GraphQL endpoint of Digitransit
const DefaultEndpoint = "https://api.digitransit.fi/routing/v1/routers/hsl/index/graphql"

const userAgent = "hslboard/1.0"

// Client talks to the Digitransit GraphQL API
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// Option customizes a Client
type Option func(*Client)

// WithEndpoint points the client at another GraphQL endpoint
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithAPIKey sets the digitransit-subscription-key header on every request
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout bounds every request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a client for the default endpoint
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query POSTs a GraphQL query once and returns the raw response body
func (c *Client) Query(ctx context.Context, query string) ([]byte, error) {
	payload, err := EncodeRequest(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("digitransit-subscription-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return body, nil
}

// SearchStops returns every stop matching a code or name
func (c *Client) SearchStops(ctx context.Context, code string) ([]Stop, error) {
	body, err := c.Query(ctx, StopSearchQuery(code))
	if err != nil {
		return nil, fmt.Errorf("failed to search stops: %w", err)
	}
	return ParseStops(body, code)
}

// ResolveStop returns the first stop matching a code or name
func (c *Client) ResolveStop(ctx context.Context, code string) (Stop, error) {
	body, err := c.Query(ctx, StopSearchQuery(code))
	if err != nil {
		return Stop{}, fmt.Errorf("failed to search stops: %w", err)
	}
	return ParseStop(body, code)
}

// FetchDepartures gets the upcoming departures of a stop
func (c *Client) FetchDepartures(ctx context.Context, stopID string, opts ParseOptions) ([]Departure, error) {
	body, err := c.Query(ctx, DeparturesQuery(stopID, opts.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departures: %w", err)
	}
	return ParseDepartures(body, opts)
}
