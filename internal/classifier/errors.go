package classifier

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sbilibin2017/gw-api-tools/internal/models"
)

// DecodeError reports a response body that is not a JSON object.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError is an API-level failure with a known error type.
type APIError struct {
	Code    models.APIErrorCode
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// UnknownAPIError is an API-level failure whose error type is not recognised.
type UnknownAPIError struct {
	Type string
}

func (e *UnknownAPIError) Error() string {
	if e.Type == "" {
		return "unknown api error"
	}
	return fmt.Sprintf("unknown api error %q", e.Type)
}

// TransportError is a 4xx or 5xx HTTP status without an API-level error body.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("http status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// MissingFieldError names a field absent from an otherwise successful response.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// NetworkError is a failure to get any response at all.
type NetworkError struct {
	Err error
}

// NewNetworkError wraps an error returned by http.Client.Do.
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{Err: err}
}

func (e *NetworkError) Error() string {
	if e.Timeout() {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("connection failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Timeout reports whether the request hit a deadline rather than failing to connect.
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
