package telnyx

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates the client was constructed without a credential.
var ErrMissingAPIKey = errors.New("telnyx: API key is required")

// APIError represents a non-success HTTP status returned by the API. Body
// holds the raw response text when one was present, otherwise an empty string.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("telnyx: API error (status %d): %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// ParseError represents a response that carried a success status but whose
// body could not be decoded into the expected shape. It is reported
// distinctly from APIError so callers can tell "server rejected the request"
// apart from "server accepted but returned something unexpected".
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("telnyx: failed to parse response: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// TransportError represents a failure below the HTTP layer, such as a
// connection failure or request timeout.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("telnyx: request failed: %v", e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts an *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsParseError checks if the error chain contains a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsTransportError checks if the error chain contains a TransportError.
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
