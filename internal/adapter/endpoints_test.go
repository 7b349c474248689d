package adapter

import (
	"testing"

	"github.com/MKhiriev/movie-manager/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEndpoints(t *testing.T) Endpoints {
	t.Helper()
	e, err := NewEndpoints(config.ClientAdapter{
		APIBaseURL:   "https://api.themoviedb.org/3",
		ImageBaseURL: "https://image.tmdb.org/t/p/w500",
		AuthSiteURL:  "https://www.themoviedb.org",
	}, config.ClientApp{APIKey: "KEY", RedirectScheme: "themoviemanager"})
	require.NoError(t, err)
	return e
}

func TestNewEndpoints_InvalidBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ClientAdapter
	}{
		{"empty api", config.ClientAdapter{ImageBaseURL: "x.org", AuthSiteURL: "y.org"}},
		{"empty image", config.ClientAdapter{APIBaseURL: "x.org", AuthSiteURL: "y.org"}},
		{"empty auth", config.ClientAdapter{APIBaseURL: "x.org", ImageBaseURL: "y.org"}},
		{"no host", config.ClientAdapter{APIBaseURL: "http://", ImageBaseURL: "y.org", AuthSiteURL: "z.org"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEndpoints(tt.cfg, config.ClientApp{APIKey: "KEY"})
			assert.Error(t, err)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" api.example.org/3/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org/3", got)

	got, err = normalizeBaseURL("http://127.0.0.1:8088")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8088", got)
}

func TestEndpoints_URLs(t *testing.T) {
	e := testEndpoints(t)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"request token", e.RequestToken(), "https://api.themoviedb.org/3/authentication/token/new?api_key=KEY"},
		{"validate login", e.ValidateLogin(), "https://api.themoviedb.org/3/authentication/token/validate_with_login?api_key=KEY"},
		{"create session", e.CreateSession(), "https://api.themoviedb.org/3/authentication/session/new?api_key=KEY"},
		{"delete session", e.DeleteSession(), "https://api.themoviedb.org/3/authentication/session?api_key=KEY"},
		{"account", e.Account("S"), "https://api.themoviedb.org/3/account?api_key=KEY&session_id=S"},
		{"watchlist", e.Watchlist(42, "S"), "https://api.themoviedb.org/3/account/42/watchlist/movies?api_key=KEY&session_id=S&sort_by=created_at.desc"},
		{"favorites", e.Favorites(42, "S"), "https://api.themoviedb.org/3/account/42/favorite/movies?api_key=KEY&session_id=S"},
		{"modify watchlist", e.ModifyWatchlist(42, "S"), "https://api.themoviedb.org/3/account/42/watchlist?api_key=KEY&session_id=S"},
		{"modify favorites", e.ModifyFavorites(42, "S"), "https://api.themoviedb.org/3/account/42/favorite?api_key=KEY&session_id=S"},
		{"search", e.Search("Mad Max: Fury Road"), "https://api.themoviedb.org/3/search/movie?api_key=KEY&query=Mad+Max%3A+Fury+Road"},
		{"poster", e.PosterImage("/abc123.jpg"), "https://image.tmdb.org/t/p/w500//abc123.jpg"},
		{"web auth", e.WebAuth("T"), "https://www.themoviedb.org/authenticate/T?redirect_to=themoviemanager:authenticate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEndpoints_EmptySessionIsStillSent(t *testing.T) {
	e := testEndpoints(t)
	assert.Equal(t,
		"https://api.themoviedb.org/3/account/0/watchlist/movies?api_key=KEY&session_id=&sort_by=created_at.desc",
		e.Watchlist(0, ""))
}
