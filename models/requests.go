package models

// Credentials are the username and password the user signs in with. They
// are only ever sent to the validate-with-login endpoint and are not kept.
type Credentials struct {
	Username string
	Password string
}

// LoginRequest is the body of the validate-with-login call.
type LoginRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	RequestToken string `json:"request_token"`
}

// SessionRequest is the body of the session creation call.
type SessionRequest struct {
	RequestToken string `json:"request_token"`
}

// LogoutRequest is the body of the session deletion call.
type LogoutRequest struct {
	SessionID string `json:"session_id"`
}

// MarkWatchlistRequest adds (Watchlist == true) or removes a movie from the
// account watchlist.
type MarkWatchlistRequest struct {
	MediaType string `json:"media_type"`
	MediaID   int64  `json:"media_id"`
	Watchlist bool   `json:"watchlist"`
}

// MarkFavoriteRequest adds (Favorite == true) or removes a movie from the
// account favorites.
type MarkFavoriteRequest struct {
	MediaType string `json:"media_type"`
	MediaID   int64  `json:"media_id"`
	Favorite  bool   `json:"favorite"`
}
