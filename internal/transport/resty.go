package transport

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/utils"
)

// RequestIDHeader carries a per-call id that shows up in both client and
// stub logs.
const RequestIDHeader = "X-Request-ID"

type restyTransport struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewRestyTransport constructs a [Transport] on top of a resty client.
// A zero timeout leaves resty's default (no client-side timeout) in place.
func NewRestyTransport(timeout time.Duration, logger *logger.Logger) Transport {
	client := utils.NewHTTPClient()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &restyTransport{client: client, ids: utils.NewUUIDGenerator(), logger: logger}
}

// Do implements [Transport].
func (t *restyTransport) Do(ctx context.Context, req Request) (Response, error) {
	requestID := t.ids.Generate()

	r := t.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").
			SetBody(req.Body)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = RedactURL(urlErr.URL)
		}
		t.logger.Debug().
			Err(err).
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("url", RedactURL(req.URL)).
			Msg("transport failure")
		return Response{}, fmt.Errorf("%s %s: %w", req.Method, RedactURL(req.URL), err)
	}

	t.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", RedactURL(req.URL)).
		Int("status", resp.StatusCode()).
		Int("size", len(resp.Body())).
		Dur("duration", time.Since(start)).
		Send()

	return Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// secretParams are query parameters that must never reach a log line.
var secretParams = []string{"api_key", "session_id"}

// RedactURL masks credentials carried in the query string of raw. Unparseable
// input is returned as a fixed placeholder.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}

	q := u.Query()
	changed := false
	for _, name := range secretParams {
		if q.Has(name) {
			q.Set(name, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
