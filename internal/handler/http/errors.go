// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/movie-manager/internal/app"
	"github.com/MKhiriev/movie-manager/internal/store"
	"github.com/MKhiriev/movie-manager/models"
)

// statusError is an error answered with the service's status envelope.
type statusError struct {
	httpStatus int
	code       int
	message    string
}

var (
	errInvalidParameters = statusError{http.StatusBadRequest, models.StatusValidationFailed, app.MsgInvalidParameters}
	errNotFound          = statusError{http.StatusNotFound, models.StatusResourceNotFound, app.MsgNotFound}
	errInvalidAPIKey     = statusError{http.StatusUnauthorized, models.StatusInvalidAPIKey, app.MsgInvalidAPIKey}
	errAuthFailed        = statusError{http.StatusUnauthorized, models.StatusAuthenticationFailed, app.MsgAuthenticationFailed}
)

// mapStorageError translates a [store.StubStorage] error into the status
// the remote service answers with. Unknown errors become 500 with no
// service status.
func mapStorageError(err error) statusError {
	switch {
	case errors.Is(err, store.ErrMissingCredentials):
		return statusError{http.StatusBadRequest, models.StatusMissingCredentials, app.MsgMissingCredentials}
	case errors.Is(err, store.ErrInvalidCredentials):
		return statusError{http.StatusUnauthorized, models.StatusInvalidCredentials, app.MsgInvalidCredentials}
	case errors.Is(err, store.ErrInvalidRequestToken):
		return statusError{http.StatusUnauthorized, models.StatusInvalidRequestToken, app.MsgInvalidRequestToken}
	case errors.Is(err, store.ErrTokenNotApproved):
		return statusError{http.StatusUnauthorized, models.StatusSessionDenied, app.MsgSessionDenied}
	case errors.Is(err, store.ErrInvalidSession):
		return errAuthFailed
	case errors.Is(err, store.ErrMovieNotFound), errors.Is(err, store.ErrPosterNotFound):
		return errNotFound
	default:
		return statusError{http.StatusInternalServerError, 0, http.StatusText(http.StatusInternalServerError)}
	}
}

// toggleMessage returns the message sent with a successful toggle code.
func toggleMessage(code int) string {
	switch code {
	case models.StatusItemUpdated:
		return app.MsgItemUpdated
	case models.StatusItemDeleted:
		return app.MsgItemDeleted
	default:
		return app.MsgSuccess
	}
}
