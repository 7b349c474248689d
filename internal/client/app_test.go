package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/mock"
	"github.com/MKhiriev/movie-manager/internal/service"
	"github.com/MKhiriev/movie-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var madMax = models.Movie{
	ID:          76341,
	Title:       "Mad Max: Fury Road",
	PosterPath:  strPtr("/8tZYtuWezp8JbcsvHYO0O46tFbo.jpg"),
	ReleaseDate: "2015-05-13",
	VoteAverage: 7.6,
}

func strPtr(s string) *string { return &s }

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *mock.MockClientAuthService, *mock.MockClientMovieService) {
	t.Helper()
	c, auth, movies := newTestAsyncClient(t)
	out := &bytes.Buffer{}
	return NewApp(c, strings.NewReader(input), out, logger.Nop()), out, auth, movies
}

func stubPassword(t *testing.T, pw string, err error) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), err }
	t.Cleanup(func() { readPassword = old })
}

func stubClipboard(t *testing.T, copied *string) {
	t.Helper()
	old := copyToClipboard
	copyToClipboard = func(text string) error {
		*copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = old })
}

func TestApp_Exec_HelpAndUnknown(t *testing.T) {
	app, out, _, _ := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.Exec(ctx, []string{"help"}))
	assert.Contains(t, out.String(), "weblogin")

	assert.Error(t, app.Exec(ctx, []string{"dance"}))
	assert.NoError(t, app.Exec(ctx, nil))
	assert.ErrorIs(t, app.Exec(ctx, []string{"quit"}), errQuit)
}

func TestApp_Exec_Version(t *testing.T) {
	app, out, _, _ := newTestApp(t, "")
	app.SetBuildInfo(models.NewAppBuildInfo("v0.3.0", "2026-10-01", ""))

	require.NoError(t, app.Exec(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "Build version: v0.3.0")
	assert.Contains(t, out.String(), "Build commit: N/A")
}

func TestApp_Exec_Login(t *testing.T) {
	app, out, auth, movies := newTestApp(t, "")
	stubPassword(t, "pw", nil)

	gomock.InOrder(
		auth.EXPECT().Login(gomock.Any(), models.Credentials{Username: "alice", Password: "pw"}).
			Return(models.Account{ID: 42, Username: "alice"}, nil),
		movies.EXPECT().Refresh(gomock.Any()).Return(nil),
	)

	require.NoError(t, app.Exec(context.Background(), []string{"login", "alice"}))
	assert.Contains(t, out.String(), "Logged in as alice (account 42)")
}

func TestApp_Exec_LoginRefreshFailureKeepsLogin(t *testing.T) {
	app, out, auth, movies := newTestApp(t, "")
	stubPassword(t, "pw", nil)

	gomock.InOrder(
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Account{ID: 42, Username: "alice"}, nil),
		movies.EXPECT().Refresh(gomock.Any()).Return(errors.New("watchlist: network error")),
	)

	require.NoError(t, app.Exec(context.Background(), []string{"login", "alice"}))
	assert.Contains(t, out.String(), "Logged in as alice (account 42)")
	assert.Contains(t, out.String(), "lists not loaded: watchlist: network error")
}

func TestApp_Exec_LoginPromptsForUsername(t *testing.T) {
	app, _, auth, movies := newTestApp(t, "bob\n")
	stubPassword(t, "secret", nil)

	auth.EXPECT().Login(gomock.Any(), models.Credentials{Username: "bob", Password: "secret"}).
		Return(models.Account{ID: 1, Name: "Bob"}, nil)
	movies.EXPECT().Refresh(gomock.Any()).Return(nil)

	require.NoError(t, app.Exec(context.Background(), []string{"login"}))
}

func TestApp_Exec_LoginPasswordError(t *testing.T) {
	app, _, _, _ := newTestApp(t, "")
	stubPassword(t, "", errors.New("not a terminal"))

	err := app.Exec(context.Background(), []string{"login", "alice"})
	assert.ErrorContains(t, err, "not a terminal")
}

func TestApp_Exec_WebLogin(t *testing.T) {
	app, out, auth, movies := newTestApp(t, "\n")
	var copied string
	stubClipboard(t, &copied)

	gomock.InOrder(
		auth.EXPECT().BeginWebLogin(gomock.Any()).Return("https://www.themoviedb.org/authenticate/T?redirect_to=themoviemanager:authenticate", nil),
		auth.EXPECT().CompleteWebLogin(gomock.Any()).Return(models.Account{ID: 7, Username: "carol"}, nil),
		movies.EXPECT().Refresh(gomock.Any()).Return(nil),
	)

	require.NoError(t, app.Exec(context.Background(), []string{"weblogin"}))
	assert.Equal(t, "https://www.themoviedb.org/authenticate/T?redirect_to=themoviemanager:authenticate", copied)
	assert.Contains(t, out.String(), "/authenticate/T")
	assert.Contains(t, out.String(), "Logged in as carol")
}

func TestApp_Exec_Logout(t *testing.T) {
	app, out, auth, _ := newTestApp(t, "")
	auth.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, app.Exec(context.Background(), []string{"logout"}))
	assert.Contains(t, out.String(), "Logged out")
}

func TestApp_Exec_Lists(t *testing.T) {
	app, out, _, movies := newTestApp(t, "")
	movies.EXPECT().Watchlist(gomock.Any()).Return([]models.Movie{madMax}, nil)
	movies.EXPECT().Favorites(gomock.Any()).Return([]models.Movie{}, nil)

	require.NoError(t, app.Exec(context.Background(), []string{"watchlist"}))
	require.NoError(t, app.Exec(context.Background(), []string{"favorites"}))

	s := out.String()
	assert.Contains(t, s, "Watchlist (1)")
	assert.Contains(t, s, "Mad Max: Fury Road")
	assert.Contains(t, s, "2015")
	assert.Contains(t, s, "Favorites (0)")
}

func TestApp_Exec_ListError(t *testing.T) {
	app, _, _, movies := newTestApp(t, "")
	movies.EXPECT().Watchlist(gomock.Any()).Return([]models.Movie{}, service.ErrNotAuthenticated)

	assert.ErrorIs(t, app.Exec(context.Background(), []string{"watchlist"}), service.ErrNotAuthenticated)
}

func TestApp_Exec_Search(t *testing.T) {
	app, out, _, movies := newTestApp(t, "")
	movies.EXPECT().Search(gomock.Any(), "Mad Max: Fury Road").Return([]models.Movie{madMax}, nil)

	require.NoError(t, app.Exec(context.Background(), []string{"search", "Mad", "Max:", "Fury", "Road"}))
	assert.Contains(t, out.String(), "76341")

	assert.ErrorIs(t, app.Exec(context.Background(), []string{"search"}), errUsage)
}

func TestApp_Exec_Toggle(t *testing.T) {
	app, out, _, movies := newTestApp(t, "")
	movies.EXPECT().FindMovie(madMax.ID).Return(madMax, true).Times(2)
	movies.EXPECT().ToggleWatchlist(gomock.Any(), madMax).Return(true, nil)
	movies.EXPECT().ToggleFavorite(gomock.Any(), madMax).Return(false, nil)

	require.NoError(t, app.Exec(context.Background(), []string{"watch", "76341"}))
	require.NoError(t, app.Exec(context.Background(), []string{"favorite", "76341"}))

	assert.Contains(t, out.String(), `Added "Mad Max: Fury Road" to watchlist`)
	assert.Contains(t, out.String(), `Removed "Mad Max: Fury Road" from favorites`)
}

func TestApp_Exec_ToggleRejectedAndBadArgs(t *testing.T) {
	app, _, _, movies := newTestApp(t, "")
	movies.EXPECT().FindMovie(madMax.ID).Return(madMax, true)
	movies.EXPECT().FindMovie(int64(1)).Return(models.Movie{}, false)
	movies.EXPECT().ToggleWatchlist(gomock.Any(), madMax).Return(false, service.ErrToggleRejected)

	ctx := context.Background()
	assert.ErrorIs(t, app.Exec(ctx, []string{"watch", "76341"}), service.ErrToggleRejected)
	assert.ErrorIs(t, app.Exec(ctx, []string{"watch", "1"}), errUnknownMovie)
	assert.ErrorIs(t, app.Exec(ctx, []string{"watch", "abc"}), errUsage)
	assert.ErrorIs(t, app.Exec(ctx, []string{"watch"}), errUsage)
}

func TestApp_Exec_Poster(t *testing.T) {
	app, out, _, movies := newTestApp(t, "")
	path := filepath.Join(t.TempDir(), "poster.jpg")

	movies.EXPECT().FindMovie(madMax.ID).Return(madMax, true)
	movies.EXPECT().Poster(gomock.Any(), madMax).Return([]byte("jpeg-bytes"), nil)

	require.NoError(t, app.Exec(context.Background(), []string{"poster", "76341", path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.Contains(t, out.String(), "10 bytes")
}

func TestApp_Run(t *testing.T) {
	app, out, auth, movies := newTestApp(t, "search Mad Max\nbogus\nquit\nwatchlist\n")
	auth.EXPECT().IsAuthenticated().Return(false).AnyTimes()
	movies.EXPECT().Search(gomock.Any(), "Mad Max").Return([]models.Movie{madMax}, nil)

	require.NoError(t, app.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "movies> ")
	assert.Contains(t, s, "Mad Max: Fury Road")
	assert.Contains(t, s, `unknown command "bogus"`)
	assert.Contains(t, s, "Bye!")
}

func TestApp_Run_EOF(t *testing.T) {
	app, _, auth, _ := newTestApp(t, "help\n")
	auth.EXPECT().IsAuthenticated().Return(true).AnyTimes()

	assert.NoError(t, app.Run(context.Background()))
}

func TestRenderMovies_Empty(t *testing.T) {
	s := renderMovies("Favorites", nil)
	assert.Contains(t, s, "Favorites (0)")
	assert.Contains(t, s, "nothing here")
}
