package store

import (
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/models"
)

// ClientStorages groups the in-process state of the client into a single
// value that can be passed around the adapter and service layers. Nothing in
// it outlives the process.
type ClientStorages struct {
	// Session is the authentication state shared by the API client (which
	// writes it during the handshake) and the services (which read it).
	Session *Session

	// Watchlist mirrors the account watchlist as last fetched, plus any
	// optimistic updates applied since.
	Watchlist *MovieList

	// Favorites mirrors the account favorites in the same way.
	Favorites *MovieList

	// SearchResults holds the results of the last search so that movies can
	// be addressed by id afterwards.
	SearchResults *MovieList
}

// NewClientStorages returns empty client state.
func NewClientStorages(logger *logger.Logger) *ClientStorages {
	logger.Debug().Msg("creating client storages")

	return &ClientStorages{
		Session:       NewSession(),
		Watchlist:     NewMovieList(),
		Favorites:     NewMovieList(),
		SearchResults: NewMovieList(),
	}
}

// ClearLists empties every movie list.
func (s *ClientStorages) ClearLists() {
	s.Watchlist.Clear()
	s.Favorites.Clear()
	s.SearchResults.Clear()
}

// FindMovie looks id up in the watchlist, the favorites and the last search
// results, in that order.
func (s *ClientStorages) FindMovie(id int64) (models.Movie, bool) {
	for _, list := range []*MovieList{s.Watchlist, s.Favorites, s.SearchResults} {
		if m, ok := list.Find(id); ok {
			return m, true
		}
	}
	return models.Movie{}, false
}
