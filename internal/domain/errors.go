package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized signals a request that requires a verified caller identity.
	ErrUnauthorized = errors.New("authentication required")
	// ErrMalformedRecord signals an upstream record that cannot be coerced
	// into its canonical shape.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUpstream signals a failed upstream collection fetch.
	ErrUpstream = errors.New("upstream fetch failed")
)

// UpstreamError wraps ErrUpstream with the provider's response details.
// Message is the structured error message from the provider body, when the
// provider returned one. Detail carries the transport-level error string or
// raw body when no structured message was available.
type UpstreamError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", ErrUpstream.Error(), e.Status(), e.Message)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", ErrUpstream.Error(), e.Status(), e.Detail)
	}
	return fmt.Sprintf("%s: status %d", ErrUpstream.Error(), e.Status())
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// Status returns the HTTP status to surface, defaulting to 500 when the
// provider reported none.
func (e *UpstreamError) Status() int {
	if e.StatusCode == 0 {
		return http.StatusInternalServerError
	}
	return e.StatusCode
}

// NewUpstreamError creates an upstream error with a structured provider message.
func NewUpstreamError(status int, message string) error {
	return &UpstreamError{StatusCode: status, Message: message}
}

// NewUpstreamTransportError creates an upstream error for a transport-level
// failure that produced no structured provider response.
func NewUpstreamTransportError(detail string) error {
	return &UpstreamError{StatusCode: http.StatusInternalServerError, Detail: detail}
}
