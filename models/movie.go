package models

// MediaTypeMovie is the only media type the watchlist and favorites toggles
// are issued with.
const MediaTypeMovie = "movie"

// Movie is a single catalogue entry as returned by the list and search
// endpoints of the remote movie database.
//
// Two movies are the same movie when their IDs match; the remaining fields
// are descriptive and may differ between endpoints (e.g. a search result may
// carry a different popularity than the same movie in a watchlist).
type Movie struct {
	// ID is the identifier of the movie in the remote catalogue.
	ID int64 `json:"id"`

	// Title is the localised title.
	Title string `json:"title"`

	// OriginalTitle is the title in the original language of the movie.
	OriginalTitle string `json:"original_title,omitempty"`

	// PosterPath is the path fragment of the poster artwork, e.g.
	// "/kqjL17yufvn9OVLyXYpvtyrFfak.jpg". It is nil when the movie has no
	// artwork.
	PosterPath *string `json:"poster_path"`

	// Overview is a short plot description.
	Overview string `json:"overview,omitempty"`

	// ReleaseDate is the release date as reported by the service
	// ("YYYY-MM-DD"); empty when unknown.
	ReleaseDate string `json:"release_date,omitempty"`

	Popularity  float64 `json:"popularity,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	VoteCount   int64   `json:"vote_count,omitempty"`
	GenreIDs    []int64 `json:"genre_ids,omitempty"`
}

// Equal reports whether m and other denote the same catalogue entry.
func (m Movie) Equal(other Movie) bool {
	return m.ID == other.ID
}

// HasPoster reports whether the movie carries a non-empty poster path.
func (m Movie) HasPoster() bool {
	return m.PosterPath != nil && *m.PosterPath != ""
}

// ReleaseYear returns the year part of ReleaseDate, or an empty string.
func (m Movie) ReleaseYear() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}
