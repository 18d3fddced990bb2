package saes

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received without an API envelope.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrEmptyResponseData indicates a successful envelope that carries no data.
	ErrEmptyResponseData = errors.New("response contains no data")
	// ErrNoPairs indicates that a meet-in-the-middle attack was requested without known pairs.
	ErrNoPairs = errors.New("at least one plaintext/ciphertext pair is required")
)

// APIError is an error reported by the backend inside its response envelope.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Code is the envelope code; any non-zero value is a failure.
	Code int
	// Message is the human-readable reason supplied by the backend.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d, code %d): %s", e.StatusCode, e.Code, e.Message)
}
