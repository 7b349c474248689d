// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport provides the injectable HTTP layer underneath the movie
// database client.
//
// [Transport] is deliberately narrow: it performs one request and hands back
// the status code and the raw body, or a transport error when no response
// was received at all. Decoding, error-envelope fallback and session handling
// live in the adapter package, so tests can replace the whole network with a
// mock or a canned [Func].
package transport

import (
	"context"
)

//go:generate mockgen -source=transport.go -destination=../mock/transport_mock.go -package=mock

// Request describes a single outbound call.
type Request struct {
	// Method is the HTTP method (GET, POST, DELETE).
	Method string

	// URL is the absolute request URL including the query string.
	URL string

	// Body, when non-nil, is JSON-encoded and sent with
	// "Content-Type: application/json".
	Body any
}

// Response is what came back from the remote side.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Body is the raw response body.
	Body []byte
}

// Transport performs HTTP requests.
type Transport interface {
	// Do sends req and returns the response. A non-nil error means no
	// response was received (connection refused, timeout, DNS failure,
	// cancelled context, ...); any HTTP status, including 4xx/5xx, is a
	// successful transport round-trip.
	Do(ctx context.Context, req Request) (Response, error)
}

// Func adapts an ordinary function to the [Transport] interface.
type Func func(ctx context.Context, req Request) (Response, error)

// Do implements [Transport].
func (f Func) Do(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}
