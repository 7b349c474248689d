package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/movie-manager/internal/config"
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/store"
	"github.com/MKhiriev/movie-manager/internal/transport"
	"github.com/MKhiriev/movie-manager/models"
)

type httpMovieAPI struct {
	endpoints Endpoints
	transport transport.Transport
	session   *store.Session

	logger *logger.Logger
}

// NewHTTPMovieAPI constructs the HTTP implementation of [MovieAPI]. The
// session is owned by the caller and shared with it: the handshake writes
// into it and every authenticated call reads from it.
//
// Returns an error if any configured base URL is empty or cannot be parsed.
func NewHTTPMovieAPI(adapterCfg config.ClientAdapter, appCfg config.ClientApp, session *store.Session, tr transport.Transport, logger *logger.Logger) (MovieAPI, error) {
	endpoints, err := NewEndpoints(adapterCfg, appCfg)
	if err != nil {
		return nil, err
	}

	return &httpMovieAPI{endpoints: endpoints, transport: tr, session: session, logger: logger}, nil
}

// RequestToken implements [MovieAPI].
func (h *httpMovieAPI) RequestToken(ctx context.Context) error {
	var token models.TokenResponse
	if err := h.call(ctx, http.MethodGet, h.endpoints.RequestToken(), nil, &token); err != nil {
		return fmt.Errorf("request token: %w", handshakeError(err))
	}

	h.session.SetRequestToken(token.RequestToken)
	h.logger.Debug().Str("expires_at", token.ExpiresAt).Msg("request token obtained")
	return nil
}

// ValidateLogin implements [MovieAPI]. The request token is sent as stored,
// even when empty; rejecting it is up to the service.
func (h *httpMovieAPI) ValidateLogin(ctx context.Context, creds models.Credentials) error {
	body := models.LoginRequest{
		Username:     creds.Username,
		Password:     creds.Password,
		RequestToken: h.session.RequestToken(),
	}

	var token models.TokenResponse
	if err := h.call(ctx, http.MethodPost, h.endpoints.ValidateLogin(), body, &token); err != nil {
		return fmt.Errorf("validate login: %w", handshakeError(err))
	}

	h.session.SetRequestToken(token.RequestToken)
	h.logger.Debug().Str("username", creds.Username).Msg("request token validated")
	return nil
}

// CreateSession implements [MovieAPI].
func (h *httpMovieAPI) CreateSession(ctx context.Context) error {
	body := models.SessionRequest{RequestToken: h.session.RequestToken()}

	var session models.SessionResponse
	if err := h.call(ctx, http.MethodPost, h.endpoints.CreateSession(), body, &session); err != nil {
		return fmt.Errorf("create session: %w", handshakeError(err))
	}

	h.session.SetSessionID(session.SessionID)
	h.logger.Debug().Msg("session created")
	return nil
}

// Account implements [MovieAPI].
func (h *httpMovieAPI) Account(ctx context.Context) (models.Account, error) {
	var account models.Account
	if err := h.call(ctx, http.MethodGet, h.endpoints.Account(h.session.SessionID()), nil, &account); err != nil {
		return models.Account{}, fmt.Errorf("account details: %w", handshakeError(err))
	}

	h.session.SetAccountID(account.ID)
	return account, nil
}

// WebAuthURL implements [MovieAPI].
func (h *httpMovieAPI) WebAuthURL() string {
	return h.endpoints.WebAuth(h.session.RequestToken())
}

// Logout implements [MovieAPI].
func (h *httpMovieAPI) Logout(ctx context.Context) (bool, error) {
	body := models.LogoutRequest{SessionID: h.session.SessionID()}

	resp, err := h.do(ctx, http.MethodDelete, h.endpoints.DeleteSession(), body)
	if err != nil {
		return false, fmt.Errorf("logout: %w", err)
	}

	var logout models.LogoutResponse
	if err = decodeEnvelope(resp, &logout); err != nil {
		return false, fmt.Errorf("logout: %w", err)
	}
	if !*logout.Success {
		if apiErr := decodeAPIError(resp); apiErr != nil {
			return false, fmt.Errorf("logout: %w", apiErr)
		}
		return false, nil
	}

	h.session.Clear()
	h.logger.Debug().Msg("session deleted")
	return true, nil
}

// Watchlist implements [MovieAPI].
func (h *httpMovieAPI) Watchlist(ctx context.Context) ([]models.Movie, error) {
	state := h.session.Snapshot()
	movies, err := h.movies(ctx, h.endpoints.Watchlist(state.AccountID, state.SessionID))
	if err != nil {
		return movies, fmt.Errorf("watchlist: %w", err)
	}
	return movies, nil
}

// Favorites implements [MovieAPI].
func (h *httpMovieAPI) Favorites(ctx context.Context) ([]models.Movie, error) {
	state := h.session.Snapshot()
	movies, err := h.movies(ctx, h.endpoints.Favorites(state.AccountID, state.SessionID))
	if err != nil {
		return movies, fmt.Errorf("favorites: %w", err)
	}
	return movies, nil
}

// Search implements [MovieAPI].
func (h *httpMovieAPI) Search(ctx context.Context, query string) ([]models.Movie, error) {
	movies, err := h.movies(ctx, h.endpoints.Search(query))
	if err != nil {
		return movies, fmt.Errorf("search %q: %w", query, err)
	}
	return movies, nil
}

// ModifyWatchlist implements [MovieAPI].
func (h *httpMovieAPI) ModifyWatchlist(ctx context.Context, movieID int64, watchlist bool) bool {
	state := h.session.Snapshot()
	body := models.MarkWatchlistRequest{
		MediaType: models.MediaTypeMovie,
		MediaID:   movieID,
		Watchlist: watchlist,
	}
	return h.toggle(ctx, h.endpoints.ModifyWatchlist(state.AccountID, state.SessionID), body, movieID)
}

// ModifyFavorites implements [MovieAPI].
func (h *httpMovieAPI) ModifyFavorites(ctx context.Context, movieID int64, favorite bool) bool {
	state := h.session.Snapshot()
	body := models.MarkFavoriteRequest{
		MediaType: models.MediaTypeMovie,
		MediaID:   movieID,
		Favorite:  favorite,
	}
	return h.toggle(ctx, h.endpoints.ModifyFavorites(state.AccountID, state.SessionID), body, movieID)
}

// PosterImage implements [MovieAPI].
func (h *httpMovieAPI) PosterImage(ctx context.Context, posterPath string) ([]byte, error) {
	resp, err := h.do(ctx, http.MethodGet, h.endpoints.PosterImage(posterPath), nil)
	if err != nil {
		return nil, fmt.Errorf("poster %s: %w", posterPath, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("poster %s: %w", posterPath, err)
	}

	return resp.Body, nil
}

func (h *httpMovieAPI) movies(ctx context.Context, url string) ([]models.Movie, error) {
	var results models.MovieResults
	if err := h.call(ctx, http.MethodGet, url, nil, &results); err != nil {
		return []models.Movie{}, err
	}
	return results.Results, nil
}

func (h *httpMovieAPI) toggle(ctx context.Context, url string, body any, movieID int64) bool {
	var status models.StatusResponse
	if err := h.call(ctx, http.MethodPost, url, body, &status); err != nil {
		h.logger.Warn().Err(err).Int64("movie_id", movieID).Msg("list toggle failed")
		return false
	}

	if !models.IsToggleSuccess(status.StatusCode) {
		h.logger.Warn().
			Int("status_code", status.StatusCode).
			Str("status_message", status.StatusMessage).
			Int64("movie_id", movieID).
			Msg("list toggle rejected")
		return false
	}
	return true
}

// call performs the request and decodes the response into out.
func (h *httpMovieAPI) call(ctx context.Context, method, url string, body any, out models.Envelope) error {
	resp, err := h.do(ctx, method, url, body)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, out)
}

func (h *httpMovieAPI) do(ctx context.Context, method, url string, body any) (transport.Response, error) {
	resp, err := h.transport.Do(ctx, transport.Request{Method: method, URL: url, Body: body})
	if err != nil {
		return transport.Response{}, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	return resp, nil
}

// handshakeError marks service errors of a handshake step as ErrAuth.
// Network and decode failures pass through unchanged.
func handshakeError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}
	return err
}
