package protocol

import (
	"errors"
	"fmt"
	"net/http"
)

// strError is a simple string-based error type that implements the error interface.
// It allows creating lightweight error values from string constants without
// allocating a new error for each instance.
type strError string

// Error implements the error interface by returning the string value of the error.
func (e strError) Error() string {
	return string(e)
}

// ErrServerUnavailable is returned when the hosting server is unavailable (HTTP 5xx and 429).
// This error should only be used with errors.Is() for comparison, not for type assertions.
var ErrServerUnavailable = errors.New("server unavailable")

// ServerUnavailableError provides structured information about a server that is unavailable.
type ServerUnavailableError struct {
	// StatusCode is the HTTP status code (5xx or 429)
	StatusCode int
	// Operation is the HTTP method that failed (e.g., "GET", "POST", "PATCH")
	Operation  string
	Underlying error
}

func (e *ServerUnavailableError) Error() string {
	op := ""
	if e.Operation != "" {
		op = fmt.Sprintf("operation %s, ", e.Operation)
	}
	if e.Underlying != nil {
		return fmt.Sprintf("server unavailable (%sstatus code %d): %v", op, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("server unavailable (%sstatus code %d)", op, e.StatusCode)
}

// Unwrap returns the underlying error, preserving the error chain.
func (e *ServerUnavailableError) Unwrap() error {
	return e.Underlying
}

// Is enables errors.Is() compatibility with ErrServerUnavailable.
func (e *ServerUnavailableError) Is(target error) bool {
	return target == ErrServerUnavailable
}

// NewServerUnavailableError creates a new ServerUnavailableError. Operation can be
// empty if the HTTP method is unknown.
func NewServerUnavailableError(operation string, statusCode int, underlying error) *ServerUnavailableError {
	return &ServerUnavailableError{
		Operation:  operation,
		StatusCode: statusCode,
		Underlying: underlying,
	}
}

// IsUnavailableStatus reports whether a status code means the server could
// not handle the request right now.
func IsUnavailableStatus(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests
}
