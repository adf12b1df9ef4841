package pexels

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrAPIKeyRequired indicates the client was constructed without an API key
	ErrAPIKeyRequired = errors.New("pexels API key is required")
	// ErrBaseURLRequired indicates an empty base URL override
	ErrBaseURLRequired = errors.New("pexels base URL is required")
)

// ParameterError indicates a caller-supplied parameter failed validation.
// It is returned before any network call is made.
type ParameterError struct {
	Param  string
	Reason string
}

// Error implements the error interface
func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

func invalidParam(param, format string, args ...any) *ParameterError {
	return &ParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// RequestError indicates a transport-level failure (connection, DNS, TLS,
// timeout) where no HTTP response was received.
type RequestError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("pexels request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError represents a non-2xx response from the Pexels API
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("pexels API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a missing resource
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an invalid or missing API key
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited checks if the error indicates the monthly or per-hour quota
// was exceeded. The client never retries; callers decide how to back off.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// DecodeError indicates a response body that did not match the expected
// schema. Field holds the path to the offending value (e.g.
// "photos[2].src.original"), Detail a human-readable description.
type DecodeError struct {
	Field  string
	Detail string
	Err    error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("pexels decode error at %s: %s", e.Field, e.Detail)
	}
	return fmt.Sprintf("pexels decode error: %s", e.Detail)
}

// Unwrap returns the underlying decoding error, if any
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func missingField(path string) *DecodeError {
	return &DecodeError{Field: path, Detail: "required field is missing or empty"}
}
