package cleanflux

import "fmt"

// ConfigurationError reports an invalid client configuration detected at
// construction time. No client is produced when one is returned.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "cleanflux: " + e.Message
}

// APIError reports a non-2xx response from the CleanFlux API.
type APIError struct {
	// StatusCode is the HTTP status returned by the API.
	StatusCode int

	// Message is the "error" field from the response body, falling back to
	// the "message" field, then to a generic status-based message.
	Message string

	// Response is the parsed response body, or nil if the body was not
	// valid JSON.
	Response Result
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cleanflux: API error (status %d): %s", e.StatusCode, e.Message)
}

// newAPIError builds an APIError from a status code and the parsed body.
func newAPIError(status int, body Result) *APIError {
	msg := fmt.Sprintf("request failed with status %d", status)
	if s, ok := body["error"].(string); ok && s != "" {
		msg = s
	} else if s, ok := body["message"].(string); ok && s != "" {
		msg = s
	}
	return &APIError{
		StatusCode: status,
		Message:    msg,
		Response:   body,
	}
}
