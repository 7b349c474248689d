package models

// Status codes of the remote service that the client and the local stub care
// about. The full table is much longer; only codes that are produced or
// interpreted somewhere in this module are listed.
const (
	StatusSuccess              = 1
	StatusAuthenticationFailed = 3
	StatusValidationFailed     = 5
	StatusInvalidID            = 6
	StatusInvalidAPIKey        = 7
	StatusItemUpdated          = 12
	StatusItemDeleted          = 13
	StatusSessionDenied        = 17
	StatusMissingCredentials   = 26
	StatusInvalidCredentials   = 30
	StatusInvalidRequestToken  = 33
	StatusResourceNotFound     = 34
)

// IsToggleSuccess reports whether code is one of the codes the service
// answers a watchlist or favorites toggle with when the list ends up in the
// requested state: created, already present/updated, or deleted.
func IsToggleSuccess(code int) bool {
	switch code {
	case StatusSuccess, StatusItemUpdated, StatusItemDeleted:
		return true
	default:
		return false
	}
}
