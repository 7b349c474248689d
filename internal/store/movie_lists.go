package store

import (
	"sync"

	"github.com/MKhiriev/movie-manager/models"
)

// MovieList is an ordered, in-memory list of movies. Membership is decided
// by [models.Movie.Equal]. The list is replaced wholesale after a remote
// fetch and mutated one movie at a time after a successful remote toggle.
type MovieList struct {
	mu     sync.RWMutex
	movies []models.Movie
}

// NewMovieList returns an empty list.
func NewMovieList() *MovieList {
	return &MovieList{movies: make([]models.Movie, 0)}
}

// Replace discards the current content and stores a copy of movies.
func (l *MovieList) Replace(movies []models.Movie) {
	cp := make([]models.Movie, len(movies))
	copy(cp, movies)

	l.mu.Lock()
	l.movies = cp
	l.mu.Unlock()
}

// All returns a copy of the list in order.
func (l *MovieList) All() []models.Movie {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cp := make([]models.Movie, len(l.movies))
	copy(cp, l.movies)
	return cp
}

// Len returns the number of movies in the list.
func (l *MovieList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.movies)
}

// Contains reports whether a movie equal to m is in the list.
func (l *MovieList) Contains(m models.Movie) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.indexOf(m) >= 0
}

// Find returns the movie with the given id.
func (l *MovieList) Find(id int64) (models.Movie, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexOf(models.Movie{ID: id})
	if i < 0 {
		return models.Movie{}, false
	}
	return l.movies[i], true
}

// Add appends m unless an equal movie is already present. It reports
// whether the list changed.
func (l *MovieList) Add(m models.Movie) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.indexOf(m) >= 0 {
		return false
	}
	l.movies = append(l.movies, m)
	return true
}

// Remove drops every movie equal to m, keeping the order of the rest. It
// reports whether the list changed.
func (l *MovieList) Remove(m models.Movie) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.movies[:0]
	for _, existing := range l.movies {
		if !existing.Equal(m) {
			kept = append(kept, existing)
		}
	}
	changed := len(kept) != len(l.movies)
	l.movies = kept
	return changed
}

// Clear empties the list.
func (l *MovieList) Clear() {
	l.mu.Lock()
	l.movies = make([]models.Movie, 0)
	l.mu.Unlock()
}

func (l *MovieList) indexOf(m models.Movie) int {
	for i, existing := range l.movies {
		if existing.Equal(m) {
			return i
		}
	}
	return -1
}
