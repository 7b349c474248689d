package store

import "errors"

// Sentinel errors returned by [StubStorage]. The stub's handlers translate
// each of them into the status code the remote service answers with.
var (
	// ErrInvalidRequestToken is returned when a request token was never
	// issued, has expired or was already exchanged for a session.
	ErrInvalidRequestToken = errors.New("invalid request token")

	// ErrTokenNotApproved is returned when a session is requested for a token
	// that was neither validated with a login nor approved on the web.
	ErrTokenNotApproved = errors.New("request token was not approved")

	// ErrInvalidCredentials is returned when the username/password pair does
	// not match the seeded account.
	ErrInvalidCredentials = errors.New("invalid username and/or password")

	// ErrMissingCredentials is returned when the username or password is
	// empty.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrInvalidSession is returned when a session id is unknown.
	ErrInvalidSession = errors.New("invalid session id")

	// ErrMovieNotFound is returned when a movie id is not in the catalogue.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrPosterNotFound is returned when no catalogue entry uses the poster
	// path.
	ErrPosterNotFound = errors.New("poster not found")
)
