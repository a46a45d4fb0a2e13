// Package quoteerror defines the error taxonomy for the quoting pipeline:
// transport failures, engine-reported pricing errors, and parse-level
// failures. An empty program list after filtering is an outcome, not an
// error, and has no type here.
package quoteerror

import (
	"errors"
	"fmt"
)

// TransportError represents a failed outbound call: timeout, connection
// failure, or a non-2xx response from the auth or pricing endpoint.
type TransportError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EngineError represents a pricing error reported by the engine inside an
// HTTP 200 response body (Status="Error"). It is a business-level failure,
// not a transport failure.
type EngineError struct {
	Message string
}

func (e *EngineError) Error() string {
	if e.Message == "" {
		return "pricing engine reported an error"
	}
	return fmt.Sprintf("pricing engine reported an error: %s", e.Message)
}

// IsEngineError reports whether err wraps an EngineError.
func IsEngineError(err error) bool {
	var ee *EngineError
	return errors.As(err, &ee)
}

// ParseError represents a document-level parse failure: the response body
// has no recognizable pricing payload at all. Field-level anomalies never
// produce one of these; they resolve to documented defaults.
type ParseError struct {
	Reason  string
	Snippet string
}

func (e *ParseError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("unparsable pricing response: %s (near %q)", e.Reason, e.Snippet)
	}
	return fmt.Sprintf("unparsable pricing response: %s", e.Reason)
}
