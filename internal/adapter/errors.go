package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork wraps transport-level failures: no response was received.
	ErrNetwork = errors.New("network error")

	// ErrDecode means the body matched neither the expected envelope nor the
	// error envelope.
	ErrDecode = errors.New("unrecognised response payload")

	// ErrAuth marks a handshake step rejected by the remote service. The
	// wrapped chain also contains the [*APIError] with the service's status.
	ErrAuth = errors.New("authentication failed")

	// ErrUnauthorized, ErrNotFound and ErrUnexpectedStatus are returned by
	// raw-byte endpoints, which have no envelope to decode an error from.
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// APIError is the remote service's own error envelope: a numeric status code
// and a human-readable message.
type APIError struct {
	// StatusCode is the service status code (not the HTTP status), e.g. 30
	// for invalid credentials or 7 for an invalid API key.
	StatusCode int

	// StatusMessage is the message that came with StatusCode.
	StatusMessage string

	// HTTPStatus is the HTTP status code the envelope arrived with.
	HTTPStatus int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote status %d (http %d): %s", e.StatusCode, e.HTTPStatus, e.StatusMessage)
}
