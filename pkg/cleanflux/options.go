package cleanflux

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds all client configuration.
type Config struct {
	// BaseURL of the CleanFlux API. A single trailing slash is stripped.
	BaseURL string

	// Timeout applied to the default HTTP client. Ignored when HTTPClient
	// is set.
	Timeout time.Duration

	// UserAgent is an extra product token prepended to the default
	// cleanflux-go/<version> User-Agent.
	UserAgent string

	// HTTPClient overrides the transport entirely.
	HTTPClient *http.Client

	// Logger receives debug-level request logging. Nil means no logging.
	Logger *slog.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}

// Option configures the client.
type Option func(*Config)

// WithBaseURL overrides the production API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithTimeout bounds each request made with the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithUserAgent prepends a product token to the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts, proxies, and
// transport-level behavior become the caller's responsibility.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = hc
	}
}

// WithLogger enables debug logging of requests through the given logger.
// This allows integration with your application's existing logging system.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
