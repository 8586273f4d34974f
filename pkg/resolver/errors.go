package resolver

import (
	"errors"
	"fmt"
)

// Common errors returned by the upstream request path. They never escape
// Resolve; they end up truncated into the Outcome note.
var (
	// ErrRetryExhausted is returned when all retry attempts are exhausted.
	ErrRetryExhausted = errors.New("retry attempts exhausted")

	// ErrContextCancelled is returned when the context is cancelled during retry.
	ErrContextCancelled = errors.New("context cancelled")
)

// ErrorClass classifies an attempt failure for retry decisions.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx upstream responses.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx upstream responses.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents connect failures and timeouts.
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassParse represents a 200 response with an unusable body.
	ErrorClassParse ErrorClass = "parse"
)

// UpstreamError carries the upstream status and classification.
type UpstreamError struct {
	StatusCode int
	Class      ErrorClass
	Message    string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s error (status %d): %s", e.Class, e.StatusCode, e.Message)
}

// shouldRetry reports whether an error class is worth another attempt.
// Client errors and parse failures are deterministic; retrying them only
// burns upstream quota.
func shouldRetry(class ErrorClass) bool {
	switch class {
	case ErrorClassServer, ErrorClassNetwork:
		return true
	default:
		return false
	}
}
