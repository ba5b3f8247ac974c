package api

import (
	"errors"
	"fmt"

	"github.com/iris-tg/iris-cli/internal/validation"
)

// NetworkError represents a transport-level failure: DNS, connection, TLS
// handshake, or timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError represents a non-200 response from the Iris API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Detail)
}

// IsNetworkError checks if the error is a transport-level failure.
func IsNetworkError(err error) bool {
	var e *NetworkError
	return errors.As(err, &e)
}

// IsAPIError checks if the error is a non-200 API response.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsValidationError checks if the error is a pre-flight input-validation
// failure. These are the only errors operation methods return.
func IsValidationError(err error) bool {
	var e *validation.Error
	return errors.As(err, &e)
}
