package cleanflux

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cleanflux/cleanflux-go/internal/version"
)

// DefaultBaseURL is the production CleanFlux API endpoint.
const DefaultBaseURL = "https://api.cleanflux.ai"

const (
	apiKeyHeader = "x-api-key"

	// maxBodySize caps response body reads to prevent unbounded memory
	// allocation on a misbehaving server.
	maxBodySize = 10 << 20
)

// Payload is an opaque request body. The client marshals it exactly as
// given; field validation is the server's job.
type Payload map[string]any

// Result is the parsed JSON response body, returned verbatim.
type Result map[string]any

// Client talks to the CleanFlux API. It is immutable after construction and
// safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a client. The API key is required; everything else has
// defaults. No network activity occurs during construction.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigurationError{Message: "API key is required"}
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	userAgent := "cleanflux-go/" + version.String()
	if cfg.UserAgent != "" {
		userAgent = cfg.UserAgent + " " + userAgent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the normalized base URL in effect.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Clean submits content to the clean endpoint.
func (c *Client) Clean(ctx context.Context, payload Payload) (Result, error) {
	return c.do(ctx, "clean", payload)
}

// Normalize submits content to the normalize endpoint.
func (c *Client) Normalize(ctx context.Context, payload Payload) (Result, error) {
	return c.do(ctx, "normalize", payload)
}

// ExtractURLs submits content to the extract-urls endpoint.
func (c *Client) ExtractURLs(ctx context.Context, payload Payload) (Result, error) {
	return c.do(ctx, "extract-urls", payload)
}

// RemoveProfanity submits content to the remove-profanity endpoint.
func (c *Client) RemoveProfanity(ctx context.Context, payload Payload) (Result, error) {
	return c.do(ctx, "remove-profanity", payload)
}

// Metadata submits content to the metadata endpoint.
func (c *Client) Metadata(ctx context.Context, payload Payload) (Result, error) {
	return c.do(ctx, "metadata", payload)
}

// do is the single chokepoint for authenticated requests: every capability
// method funnels through it with a fixed endpoint name. Adding a capability
// is one delegating method, nothing more.
func (c *Client) do(ctx context.Context, endpoint string, payload Payload) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := c.baseURL + "/api/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.DebugContext(ctx, "dispatching request", "endpoint", endpoint, "bytes", len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	result, err := decodeResponse(resp)
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "request complete", "endpoint", endpoint, "status", resp.StatusCode)
	return result, nil
}

// decodeResponse reads the body, parses it leniently, and classifies the
// response by status. A body that is not valid JSON is treated as absent so
// classification can still run on the status code alone.
func decodeResponse(resp *http.Response) (Result, error) {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		result = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, result)
	}
	return result, nil
}
