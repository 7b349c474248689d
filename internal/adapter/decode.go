package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/movie-manager/internal/transport"
	"github.com/MKhiriev/movie-manager/models"
)

// decodeEnvelope decodes resp into out. A body that does not decode into a
// valid out is re-attempted as the service error envelope; only when that
// fails as well is the original failure returned, wrapped in ErrDecode.
//
// The HTTP status is not consulted: the service answers toggles with 201,
// errors with 401/404 and so on, and the envelope is authoritative.
func decodeEnvelope(resp transport.Response, out models.Envelope) error {
	decodeErr := json.Unmarshal(resp.Body, out)
	if decodeErr == nil {
		if decodeErr = out.Validate(); decodeErr == nil {
			return nil
		}
	}

	if apiErr := decodeAPIError(resp); apiErr != nil {
		return apiErr
	}

	return fmt.Errorf("%w: %w", ErrDecode, decodeErr)
}

// decodeAPIError returns the error envelope carried by resp, or nil when the
// body is not one.
func decodeAPIError(resp transport.Response) *APIError {
	var status models.StatusResponse
	if err := json.Unmarshal(resp.Body, &status); err != nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return nil
	}

	return &APIError{
		StatusCode:    status.StatusCode,
		StatusMessage: status.StatusMessage,
		HTTPStatus:    resp.StatusCode,
	}
}

// mapHTTPError checks the HTTP status of endpoints that return raw bytes
// instead of an envelope.
func mapHTTPError(resp transport.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body))
	if len(body) > 200 {
		body = body[:200]
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode, body)
	}
}
