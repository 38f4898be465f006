package coingecko

import (
	"errors"
	"fmt"
)

// ErrorKind classifies gateway failures so the HTTP layer can map them
// to status codes without inspecting messages.
type ErrorKind int

const (
	// KindRateLimited means the upstream provider returned HTTP 429
	KindRateLimited ErrorKind = iota
	// KindUpstream means the upstream provider returned another non-200 status
	KindUpstream
	// KindUnavailable means the upstream call failed at the transport level
	KindUnavailable
	// KindNotFound means a coin lookup failed, whatever the underlying cause
	KindNotFound
	// KindInternal means an unexpected failure while reshaping a payload
	KindInternal
)

// Error is the typed error returned by all gateway operations
type Error struct {
	Kind ErrorKind
	// StatusCode is the upstream HTTP status for KindUpstream errors, zero otherwise
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// NewRateLimitedError creates an error for an upstream HTTP 429
func NewRateLimitedError() *Error {
	return &Error{
		Kind:    KindRateLimited,
		Message: "rate limit exceeded, please try again later",
	}
}

// NewUpstreamError creates an error carrying an upstream HTTP status
func NewUpstreamError(statusCode int, detail string) *Error {
	return &Error{
		Kind:       KindUpstream,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("upstream request failed with status %d: %s", statusCode, detail),
	}
}

// NewUnavailableError creates an error for a transport-level failure
func NewUnavailableError(cause error) *Error {
	return &Error{
		Kind:    KindUnavailable,
		Message: fmt.Sprintf("error fetching data from provider: %v", cause),
	}
}

// NewNotFoundError creates an error for a failed coin lookup
func NewNotFoundError(coinID string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("coin not found: %s", coinID),
	}
}

// NewInternalError creates an error for an unexpected reshaping failure
func NewInternalError(cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: fmt.Sprintf("internal error: %v", cause),
	}
}

// AsError unwraps err into a gateway *Error when possible
func AsError(err error) (*Error, bool) {
	var gatewayErr *Error
	if errors.As(err, &gatewayErr) {
		return gatewayErr, true
	}
	return nil, false
}
