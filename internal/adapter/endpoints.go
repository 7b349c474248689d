package adapter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/movie-manager/internal/config"
)

const (
	pathRequestToken  = "/authentication/token/new"
	pathValidateLogin = "/authentication/token/validate_with_login"
	pathCreateSession = "/authentication/session/new"
	pathDeleteSession = "/authentication/session"
	pathAccount       = "/account"
	pathSearchMovie   = "/search/movie"

	watchlistSort = "created_at.desc"
)

// Endpoints builds the absolute URLs of every remote call. Parameter order
// is fixed: api_key first, then session_id, then endpoint specific values.
type Endpoints struct {
	apiBase   string
	imageBase string
	authSite  string

	apiKey         string
	redirectScheme string
}

// NewEndpoints validates and normalises the configured base URLs.
func NewEndpoints(adapterCfg config.ClientAdapter, appCfg config.ClientApp) (Endpoints, error) {
	apiBase, err := normalizeBaseURL(adapterCfg.APIBaseURL)
	if err != nil {
		return Endpoints{}, fmt.Errorf("invalid api base url: %w", err)
	}
	imageBase, err := normalizeBaseURL(adapterCfg.ImageBaseURL)
	if err != nil {
		return Endpoints{}, fmt.Errorf("invalid image base url: %w", err)
	}
	authSite, err := normalizeBaseURL(adapterCfg.AuthSiteURL)
	if err != nil {
		return Endpoints{}, fmt.Errorf("invalid auth site url: %w", err)
	}

	return Endpoints{
		apiBase:        apiBase,
		imageBase:      imageBase,
		authSite:       authSite,
		apiKey:         appCfg.APIKey,
		redirectScheme: appCfg.RedirectScheme,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (e Endpoints) api(path string) string {
	return e.apiBase + path + "?api_key=" + url.QueryEscape(e.apiKey)
}

func (e Endpoints) authed(path, sessionID string) string {
	return e.api(path) + "&session_id=" + url.QueryEscape(sessionID)
}

func accountPath(accountID int64, suffix string) string {
	return "/account/" + strconv.FormatInt(accountID, 10) + suffix
}

func (e Endpoints) RequestToken() string {
	return e.api(pathRequestToken)
}

func (e Endpoints) ValidateLogin() string {
	return e.api(pathValidateLogin)
}

func (e Endpoints) CreateSession() string {
	return e.api(pathCreateSession)
}

func (e Endpoints) DeleteSession() string {
	return e.api(pathDeleteSession)
}

func (e Endpoints) Account(sessionID string) string {
	return e.authed(pathAccount, sessionID)
}

// Watchlist lists the newest additions first.
func (e Endpoints) Watchlist(accountID int64, sessionID string) string {
	return e.authed(accountPath(accountID, "/watchlist/movies"), sessionID) + "&sort_by=" + watchlistSort
}

func (e Endpoints) Favorites(accountID int64, sessionID string) string {
	return e.authed(accountPath(accountID, "/favorite/movies"), sessionID)
}

// Search escapes query with standard query escaping: spaces become "+",
// reserved characters such as ':' are percent-encoded.
func (e Endpoints) Search(query string) string {
	return e.api(pathSearchMovie) + "&query=" + url.QueryEscape(query)
}

func (e Endpoints) ModifyWatchlist(accountID int64, sessionID string) string {
	return e.authed(accountPath(accountID, "/watchlist"), sessionID)
}

func (e Endpoints) ModifyFavorites(accountID int64, sessionID string) string {
	return e.authed(accountPath(accountID, "/favorite"), sessionID)
}

// PosterImage joins the image base and posterPath with a "/" without
// normalising. Poster paths from the service already start with "/", so the
// result contains "//"; it is sent as is.
func (e Endpoints) PosterImage(posterPath string) string {
	return e.imageBase + "/" + posterPath
}

// WebAuth is the page on which the user approves requestToken; the site then
// redirects to the application's deep link.
func (e Endpoints) WebAuth(requestToken string) string {
	return e.authSite + "/authenticate/" + requestToken + "?redirect_to=" + e.redirectScheme + ":authenticate"
}
