// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the status messages the remote movie database sends
// together with its numeric status codes. The local API stub answers with
// the same wording so that client logs and error output look alike against
// both.
package app

const (
	MsgSuccess     = "Success."
	MsgItemUpdated = "The item/record was updated successfully."
	MsgItemDeleted = "The item/record was deleted successfully."

	// MsgAuthenticationFailed goes with status 3: the session is missing or
	// does not grant access to the requested account.
	MsgAuthenticationFailed = "Authentication failed: You do not have permissions to access the service."

	MsgInvalidParameters = "Invalid parameters: Your request parameters are incorrect."
	MsgInvalidID         = "Invalid id: The pre-requisite id is invalid or not found."
	MsgInvalidAPIKey     = "Invalid API key: You must be granted a valid key."

	// MsgSessionDenied goes with status 17: the request token was never
	// approved by the user.
	MsgSessionDenied = "Session denied."

	MsgMissingCredentials  = "You must provide a username and password."
	MsgInvalidCredentials  = "Invalid username and/or password: You did not provide a valid login."
	MsgInvalidRequestToken = "Invalid request token: The request token is either expired or invalid."
	MsgNotFound            = "The resource you requested could not be found."

	// MsgTokenNotApprovedPage is the plain-text body of the web
	// authentication page for an unknown or expired token.
	MsgTokenNotApprovedPage = "The request token is either expired or invalid."
)
