package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/models"
)

var testAccount = StubAccount{ID: 7, Name: "Test User", Username: "tester", Password: "secret"}

func newTestStubStorage() *StubStorage {
	return NewStubStorage(testAccount, logger.Nop())
}

func openSession(t *testing.T, s *StubStorage) string {
	t.Helper()

	token, _ := s.NewToken()
	_, err := s.ValidateToken(token, testAccount.Username, testAccount.Password)
	require.NoError(t, err)

	sessionID, err := s.CreateSession(token)
	require.NoError(t, err)
	return sessionID
}

func TestStubStorage_NewToken(t *testing.T) {
	s := newTestStubStorage()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	token, expiresAt := s.NewToken()

	assert.Len(t, token, 32)
	assert.Equal(t, fixed.Add(RequestTokenTTL), expiresAt)
}

func TestStubStorage_ValidateToken(t *testing.T) {
	tests := []struct {
		name     string
		token    func(s *StubStorage) string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "valid",
			token:    func(s *StubStorage) string { tok, _ := s.NewToken(); return tok },
			username: "tester",
			password: "secret",
		},
		{
			name:     "missing password",
			token:    func(s *StubStorage) string { tok, _ := s.NewToken(); return tok },
			username: "tester",
			wantErr:  ErrMissingCredentials,
		},
		{
			name:     "unknown token",
			token:    func(*StubStorage) string { return "nope" },
			username: "tester",
			password: "secret",
			wantErr:  ErrInvalidRequestToken,
		},
		{
			name:     "empty token",
			token:    func(*StubStorage) string { return "" },
			username: "tester",
			password: "secret",
			wantErr:  ErrInvalidRequestToken,
		},
		{
			name:     "wrong password",
			token:    func(s *StubStorage) string { tok, _ := s.NewToken(); return tok },
			username: "tester",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStubStorage()

			_, err := s.ValidateToken(tt.token(s), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStubStorage_ExpiredToken(t *testing.T) {
	s := newTestStubStorage()
	start := time.Now()
	s.now = func() time.Time { return start }
	token, _ := s.NewToken()

	s.now = func() time.Time { return start.Add(RequestTokenTTL) }

	_, err := s.ValidateToken(token, "tester", "secret")
	assert.ErrorIs(t, err, ErrInvalidRequestToken)
}

func TestStubStorage_CreateSession(t *testing.T) {
	s := newTestStubStorage()

	t.Run("unapproved token", func(t *testing.T) {
		token, _ := s.NewToken()
		_, err := s.CreateSession(token)
		assert.ErrorIs(t, err, ErrTokenNotApproved)
	})

	t.Run("web approved token", func(t *testing.T) {
		token, _ := s.NewToken()
		require.NoError(t, s.ApproveToken(token))

		sessionID, err := s.CreateSession(token)
		require.NoError(t, err)
		assert.NotEmpty(t, sessionID)

		_, err = s.CreateSession(token)
		assert.ErrorIs(t, err, ErrInvalidRequestToken, "token is single use")
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := s.CreateSession("unknown")
		assert.ErrorIs(t, err, ErrInvalidRequestToken)
	})
}

func TestStubStorage_SessionLifecycle(t *testing.T) {
	s := newTestStubStorage()
	sessionID := openSession(t, s)

	account, err := s.AccountBySession(sessionID)
	require.NoError(t, err)
	assert.Equal(t, testAccount, account)

	require.NoError(t, s.DeleteSession(sessionID))

	_, err = s.AccountBySession(sessionID)
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.ErrorIs(t, s.DeleteSession(sessionID), ErrInvalidSession)
}

func TestStubStorage_SetWatchlist_StatusCodes(t *testing.T) {
	s := newTestStubStorage()

	code, err := s.SetWatchlist(testAccount.ID, 603, true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, code)

	code, err = s.SetWatchlist(testAccount.ID, 603, true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusItemUpdated, code)

	code, err = s.SetWatchlist(testAccount.ID, 603, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusItemDeleted, code)

	_, err = s.SetWatchlist(testAccount.ID, 999999, true)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	_, err = s.SetWatchlist(12345, 603, true)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestStubStorage_Watchlist_NewestFirst(t *testing.T) {
	s := newTestStubStorage()
	for _, id := range []int64{603, 550, 129} {
		_, err := s.SetWatchlist(testAccount.ID, id, true)
		require.NoError(t, err)
	}

	movies, err := s.Watchlist(testAccount.ID)
	require.NoError(t, err)

	ids := make([]int64, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int64{129, 550, 603}, ids)
}

func TestStubStorage_Favorites_Independent(t *testing.T) {
	s := newTestStubStorage()
	_, err := s.SetFavorite(testAccount.ID, 27205, true)
	require.NoError(t, err)

	favorites, err := s.Favorites(testAccount.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Inception", favorites[0].Title)

	watchlist, err := s.Watchlist(testAccount.ID)
	require.NoError(t, err)
	assert.Empty(t, watchlist)
	assert.NotNil(t, watchlist)
}

func TestStubStorage_Search(t *testing.T) {
	s := newTestStubStorage()

	tests := []struct {
		query string
		want  []int64
	}{
		{query: "mad max: fury", want: []int64{76341}},
		{query: "THE", want: []int64{603}},
		{query: "千尋", want: []int64{129}},
		{query: "   ", want: []int64{}},
		{query: "no such movie", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := s.Search(tt.query)
			ids := make([]int64, 0, len(got))
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestStubStorage_Poster(t *testing.T) {
	s := newTestStubStorage()

	img, err := s.Poster("//8tZYtuWezp8JbcsvHYO0O46tFbo.jpg")
	require.NoError(t, err)
	assert.Equal(t, placeholderPoster, img)

	_, err = s.Poster("/missing.jpg")
	assert.ErrorIs(t, err, ErrPosterNotFound)
}
