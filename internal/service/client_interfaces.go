// Package service holds the client use cases on top of the remote movie
// database: the login handshakes and the local mirrors of the watchlist and
// the favorites.
package service

import (
	"context"

	"github.com/MKhiriev/movie-manager/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService drives the authentication handshakes.
type ClientAuthService interface {
	// Login runs the credential handshake: request token, validate with
	// login, create session, load account. It stops at the first failing
	// step and returns its error.
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)

	// BeginWebLogin obtains a request token and returns the URL on which the
	// user approves it in a browser.
	BeginWebLogin(ctx context.Context) (string, error)

	// CompleteWebLogin creates the session once the user has approved the
	// token returned by BeginWebLogin.
	CompleteWebLogin(ctx context.Context) (models.Account, error)

	// Logout deletes the remote session. On success the local session and
	// every local movie list are cleared; on failure nothing changes.
	Logout(ctx context.Context) error

	// IsAuthenticated reports whether a session is held.
	IsAuthenticated() bool
}

// ClientMovieService manages the local movie lists.
type ClientMovieService interface {
	// Refresh fetches the watchlist and the favorites concurrently and
	// replaces the local copies that were fetched successfully.
	Refresh(ctx context.Context) error

	// Watchlist fetches the watchlist and replaces the local copy.
	Watchlist(ctx context.Context) ([]models.Movie, error)

	// Favorites fetches the favorites and replaces the local copy.
	Favorites(ctx context.Context) ([]models.Movie, error)

	// CachedWatchlist and CachedFavorites return the local copies without
	// any I/O.
	CachedWatchlist() []models.Movie
	CachedFavorites() []models.Movie

	// ToggleWatchlist adds the movie when it is not in the local watchlist
	// and removes it otherwise. It returns true when the movie was added.
	ToggleWatchlist(ctx context.Context, movie models.Movie) (bool, error)

	// ToggleFavorite is the favorites counterpart of ToggleWatchlist.
	ToggleFavorite(ctx context.Context, movie models.Movie) (bool, error)

	// Search looks movies up by title and remembers the results.
	Search(ctx context.Context, query string) ([]models.Movie, error)

	// Poster downloads the poster of movie.
	Poster(ctx context.Context, movie models.Movie) ([]byte, error)

	// FindMovie looks a movie up in the local lists and the last search
	// results.
	FindMovie(id int64) (models.Movie, bool)
}
