package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/utils"
	"github.com/MKhiriev/movie-manager/models"
)

// RequestTokenTTL is how long an issued request token can be exchanged.
const RequestTokenTTL = 60 * time.Minute

// StubAccount is the single account the local stub knows about.
type StubAccount struct {
	ID       int64
	Name     string
	Username string
	Password string
}

type requestToken struct {
	expiresAt time.Time
	approved  bool
}

type accountLists struct {
	watchlist *MovieList
	favorites *MovieList
}

// StubStorage is the in-memory state of the local stand-in for the remote
// movie database: issued request tokens, open sessions, the catalogue and
// the per-account lists. It is safe for concurrent use.
type StubStorage struct {
	mu sync.RWMutex

	account  StubAccount
	tokens   map[string]*requestToken
	sessions map[string]int64
	catalog  []models.Movie
	lists    map[int64]*accountLists

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewStubStorage seeds a storage with account and the built-in catalogue.
func NewStubStorage(account StubAccount, logger *logger.Logger) *StubStorage {
	logger.Debug().Str("username", account.Username).Msg("creating stub storage")

	return &StubStorage{
		account:  account,
		tokens:   make(map[string]*requestToken),
		sessions: make(map[string]int64),
		catalog:  seedCatalog(),
		lists: map[int64]*accountLists{
			account.ID: {watchlist: NewMovieList(), favorites: NewMovieList()},
		},
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

// NewToken issues a fresh, unapproved request token.
func (s *StubStorage) NewToken() (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.ids.GenerateHex()
	expiresAt := s.now().Add(RequestTokenTTL).UTC()
	s.tokens[token] = &requestToken{expiresAt: expiresAt}

	return token, expiresAt
}

// ValidateToken approves token if username and password match the seeded
// account. Missing credentials are checked first, then the token, then the
// credentials themselves.
func (s *StubStorage) ValidateToken(token, username, password string) (time.Time, error) {
	if username == "" || password == "" {
		return time.Time{}, ErrMissingCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.liveToken(token)
	if err != nil {
		return time.Time{}, err
	}
	if username != s.account.Username || password != s.account.Password {
		return time.Time{}, ErrInvalidCredentials
	}

	t.approved = true
	return t.expiresAt, nil
}

// ApproveToken marks token as approved, the way the web authentication page
// does once the user confirms.
func (s *StubStorage) ApproveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.liveToken(token)
	if err != nil {
		return err
	}
	t.approved = true
	return nil
}

// CreateSession exchanges an approved token for a session id. The token is
// consumed either way once it has been found approved.
func (s *StubStorage) CreateSession(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.liveToken(token)
	if err != nil {
		return "", err
	}
	if !t.approved {
		return "", ErrTokenNotApproved
	}
	delete(s.tokens, token)

	sessionID := s.ids.GenerateHex()
	s.sessions[sessionID] = s.account.ID
	return sessionID, nil
}

// DeleteSession closes sessionID.
func (s *StubStorage) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrInvalidSession
	}
	delete(s.sessions, sessionID)
	return nil
}

// AccountBySession resolves sessionID to the account it was opened for.
func (s *StubStorage) AccountBySession(sessionID string) (StubAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accountID, ok := s.sessions[sessionID]
	if !ok || accountID != s.account.ID {
		return StubAccount{}, ErrInvalidSession
	}
	return s.account, nil
}

// Watchlist returns the account watchlist, most recently added first.
func (s *StubStorage) Watchlist(accountID int64) ([]models.Movie, error) {
	lists, err := s.accountLists(accountID)
	if err != nil {
		return nil, err
	}

	movies := lists.watchlist.All()
	slices.Reverse(movies)
	return movies, nil
}

// Favorites returns the account favorites in the order they were added.
func (s *StubStorage) Favorites(accountID int64) ([]models.Movie, error) {
	lists, err := s.accountLists(accountID)
	if err != nil {
		return nil, err
	}
	return lists.favorites.All(), nil
}

// SetWatchlist adds or removes movieID and returns the status code the
// remote service answers with.
func (s *StubStorage) SetWatchlist(accountID, movieID int64, add bool) (int, error) {
	lists, err := s.accountLists(accountID)
	if err != nil {
		return 0, err
	}
	return s.toggle(lists.watchlist, movieID, add)
}

// SetFavorite is [StubStorage.SetWatchlist] for the favorites list.
func (s *StubStorage) SetFavorite(accountID, movieID int64, add bool) (int, error) {
	lists, err := s.accountLists(accountID)
	if err != nil {
		return 0, err
	}
	return s.toggle(lists.favorites, movieID, add)
}

// Search returns every catalogue entry whose title or original title
// contains query, ignoring case. An empty query matches nothing.
func (s *StubStorage) Search(query string) []models.Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	results := make([]models.Movie, 0)
	if query == "" {
		return results
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.catalog {
		if strings.Contains(strings.ToLower(m.Title), query) ||
			strings.Contains(strings.ToLower(m.OriginalTitle), query) {
			results = append(results, m)
		}
	}
	return results
}

// Poster returns the image served for posterPath. Leading slashes are
// ignored, so "/a.jpg" and "//a.jpg" address the same poster.
func (s *StubStorage) Poster(posterPath string) ([]byte, error) {
	posterPath = "/" + strings.TrimLeft(posterPath, "/")

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.catalog {
		if m.HasPoster() && *m.PosterPath == posterPath {
			return slices.Clone(placeholderPoster), nil
		}
	}
	return nil, ErrPosterNotFound
}

func (s *StubStorage) toggle(list *MovieList, movieID int64, add bool) (int, error) {
	movie, ok := s.movie(movieID)
	if !ok {
		return 0, ErrMovieNotFound
	}

	if !add {
		list.Remove(movie)
		return models.StatusItemDeleted, nil
	}
	if list.Add(movie) {
		return models.StatusSuccess, nil
	}
	return models.StatusItemUpdated, nil
}

func (s *StubStorage) movie(id int64) (models.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.catalog {
		if m.ID == id {
			return m, true
		}
	}
	return models.Movie{}, false
}

func (s *StubStorage) accountLists(accountID int64) (*accountLists, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists, ok := s.lists[accountID]
	if !ok {
		return nil, ErrInvalidSession
	}
	return lists, nil
}

// liveToken must be called with s.mu held for writing. Expired tokens are
// dropped on lookup.
func (s *StubStorage) liveToken(token string) (*requestToken, error) {
	t, ok := s.tokens[token]
	if !ok {
		return nil, ErrInvalidRequestToken
	}
	if !s.now().Before(t.expiresAt) {
		delete(s.tokens, token)
		return nil, ErrInvalidRequestToken
	}
	return t, nil
}
