package cleanflux

import (
	"context"
	"fmt"
	"net/http"
)

// Ping issues an unauthenticated GET to the ping endpoint. The endpoint is
// intentionally reachable without an API key so callers can verify
// connectivity, DNS, and TLS before presenting credentials.
//
// A non-2xx response is classified the same way as the capability methods
// and returned as *APIError.
func (c *Client) Ping(ctx context.Context) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ping", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ping failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeResponse(resp)
}
