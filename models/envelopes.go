// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	ErrMissingRequestToken = errors.New("envelope has no request_token")
	ErrMissingSessionID    = errors.New("envelope has no session_id")
	ErrMissingResults      = errors.New("envelope has no results")
	ErrMissingStatusCode   = errors.New("envelope has no status_code")
	ErrMissingSuccess      = errors.New("envelope has no success flag")
	ErrMissingAccountID    = errors.New("envelope has no account id")
)

// Envelope is the top-level decoded shape of a response body. Every endpoint
// expects exactly one envelope shape; Validate reports whether the keys that
// define that shape were present in the decoded payload.
//
// encoding/json happily decodes any JSON object into any struct, so an
// envelope that merely unmarshals without error is not proof that the body
// had the expected shape. Validate is what turns "decoded" into "recognised".
type Envelope interface {
	Validate() error
}

// TokenResponse is returned by the request-token and validate-with-login
// endpoints.
type TokenResponse struct {
	Success      bool   `json:"success"`
	ExpiresAt    string `json:"expires_at"`
	RequestToken string `json:"request_token"`
}

// Validate implements [Envelope].
func (r *TokenResponse) Validate() error {
	if r.RequestToken == "" {
		return ErrMissingRequestToken
	}
	return nil
}

// SessionResponse is returned by the session creation endpoint.
type SessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

// Validate implements [Envelope].
func (r *SessionResponse) Validate() error {
	if r.SessionID == "" {
		return ErrMissingSessionID
	}
	return nil
}

// StatusResponse is the generic status envelope. The remote service uses the
// same shape both for the outcome of list toggles and for every error it
// reports, which is why it is also the fallback envelope when a body does not
// match the shape an endpoint promised.
type StatusResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       *bool  `json:"success,omitempty"`
}

// Validate implements [Envelope].
func (r *StatusResponse) Validate() error {
	if r.StatusCode == 0 {
		return ErrMissingStatusCode
	}
	return nil
}

// Succeeded returns the declared success flag, or false when the service did
// not declare one.
func (r *StatusResponse) Succeeded() bool {
	return r.Success != nil && *r.Success
}

// LogoutResponse is returned by the session deletion endpoint.
type LogoutResponse struct {
	Success *bool `json:"success"`
}

// Validate implements [Envelope].
func (r *LogoutResponse) Validate() error {
	if r.Success == nil {
		return ErrMissingSuccess
	}
	return nil
}

// MovieResults is the paginated movie-list envelope shared by the watchlist,
// favorites and search endpoints.
type MovieResults struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Validate implements [Envelope]. An explicit empty array is a valid result;
// a missing "results" key is not.
func (r *MovieResults) Validate() error {
	if r.Results == nil {
		return ErrMissingResults
	}
	return nil
}

// Account is the envelope of the account details endpoint.
type Account struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Validate implements [Envelope].
func (r *Account) Validate() error {
	if r.ID == 0 {
		return ErrMissingAccountID
	}
	return nil
}
