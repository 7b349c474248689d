// Package utils provides general-purpose helper utilities used across the
// client and the local API stub: typed context keys, JSON response writing,
// the resty HTTP client constructor and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key under which the stub stores the account id
// resolved from the session_id query parameter.
var AccountIDCtxKey = contextKey("accountID")

// SessionIDCtxKey is the key under which the stub stores the validated
// session id.
var SessionIDCtxKey = contextKey("sessionID")

// GetAccountIDFromContext retrieves the account id stored under
// [AccountIDCtxKey]. ok is false when the value is missing or not an int64.
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetSessionIDFromContext retrieves the session id stored under
// [SessionIDCtxKey].
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}

// WithAccount returns a copy of ctx carrying both the session id and the
// account id it resolved to.
func WithAccount(ctx context.Context, sessionID string, accountID int64) context.Context {
	ctx = context.WithValue(ctx, SessionIDCtxKey, sessionID)
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}
