// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client of the remote movie database API.
//
// [MovieAPI] builds endpoint URLs, performs GET/POST/DELETE calls through an
// injectable [transport.Transport], decodes typed envelopes and drives the
// request-token handshake by reading and writing a [store.Session].
//
// Every envelope-bearing call follows the same decoding rule: the body is
// first decoded as the envelope the endpoint promises; when that fails it is
// re-attempted as the service error envelope ([*APIError]); when that fails
// too, the original decode failure is returned wrapped in [ErrDecode].
// Transport failures are returned wrapped in [ErrNetwork]. Handshake steps
// additionally wrap service errors in [ErrAuth].
//
// Nothing is retried and nothing is deduplicated.
package adapter

import (
	"context"

	"github.com/MKhiriev/movie-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/movie_api_mock.go -package=mock

// MovieAPI is the remote movie database as seen by the service layer.
type MovieAPI interface {
	// RequestToken obtains a fresh request token and stores it in the
	// session. It is the first step of every login attempt.
	RequestToken(ctx context.Context) error

	// ValidateLogin sends the credentials together with the session's
	// current request token. On success the request token in the session is
	// overwritten with the validated token returned by the service.
	ValidateLogin(ctx context.Context, creds models.Credentials) error

	// CreateSession exchanges the session's validated request token for a
	// session id and stores it. After it succeeds the session is
	// authenticated.
	CreateSession(ctx context.Context) error

	// Account loads the details of the authenticated account and stores its
	// id in the session.
	Account(ctx context.Context) (models.Account, error)

	// WebAuthURL returns the URL that lets the user approve the session's
	// current request token in a browser. It performs no I/O.
	WebAuthURL() string

	// Logout deletes the session on the remote side. Only when the service
	// confirms the deletion is the local session cleared; on any failure it
	// is left untouched because the session may still be valid remotely.
	// The returned bool is the service-declared success flag.
	Logout(ctx context.Context) (bool, error)

	// Watchlist returns the account watchlist, newest first. On failure it
	// returns an empty slice and the error.
	Watchlist(ctx context.Context) ([]models.Movie, error)

	// Favorites returns the account favorites. On failure it returns an
	// empty slice and the error.
	Favorites(ctx context.Context) ([]models.Movie, error)

	// Search returns the first page of movies matching query. On failure it
	// returns an empty slice and the error.
	Search(ctx context.Context, query string) ([]models.Movie, error)

	// ModifyWatchlist adds (watchlist == true) or removes the movie. It
	// reports true only when the service answers with one of the toggle
	// success codes; any other outcome, including transport and decoding
	// failures, is reported as false.
	ModifyWatchlist(ctx context.Context, movieID int64, watchlist bool) bool

	// ModifyFavorites is the favorites counterpart of ModifyWatchlist.
	ModifyFavorites(ctx context.Context, movieID int64, favorite bool) bool

	// PosterImage downloads the raw poster bytes for posterPath.
	PosterImage(ctx context.Context, posterPath string) ([]byte, error)
}
