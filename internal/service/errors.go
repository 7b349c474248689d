package service

import "errors"

var (
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrNotAuthenticated = errors.New("not logged in")
	ErrLogoutRejected   = errors.New("logout was not confirmed")

	// ErrToggleRejected is returned when the remote side did not confirm a
	// list change. The local list is left as it was.
	ErrToggleRejected = errors.New("list change rejected")
	ErrNoPoster       = errors.New("movie has no poster")
	ErrEmptyQuery     = errors.New("empty search query")
)
