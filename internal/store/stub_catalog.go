package store

import "github.com/MKhiriev/movie-manager/models"

func posterPath(p string) *string {
	return &p
}

// seedCatalog is the fixed catalogue the stub serves. Movie ids and poster
// paths follow the remote service so that canned data looks familiar.
func seedCatalog() []models.Movie {
	return []models.Movie{
		{
			ID:            76341,
			Title:         "Mad Max: Fury Road",
			OriginalTitle: "Mad Max: Fury Road",
			PosterPath:    posterPath("/8tZYtuWezp8JbcsvHYO0O46tFbo.jpg"),
			Overview:      "An apocalyptic story set in the furthest reaches of our planet.",
			ReleaseDate:   "2015-05-13",
			Popularity:    54.2,
			VoteAverage:   7.6,
			VoteCount:     22040,
			GenreIDs:      []int64{28, 12, 878},
		},
		{
			ID:            603,
			Title:         "The Matrix",
			OriginalTitle: "The Matrix",
			PosterPath:    posterPath("/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg"),
			Overview:      "A hacker learns about the true nature of his reality.",
			ReleaseDate:   "1999-03-30",
			Popularity:    80.1,
			VoteAverage:   8.2,
			VoteCount:     25870,
			GenreIDs:      []int64{28, 878},
		},
		{
			ID:            27205,
			Title:         "Inception",
			OriginalTitle: "Inception",
			PosterPath:    posterPath("/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg"),
			Overview:      "A thief who steals corporate secrets through dream-sharing technology.",
			ReleaseDate:   "2010-07-15",
			Popularity:    92.4,
			VoteAverage:   8.4,
			VoteCount:     36100,
			GenreIDs:      []int64{28, 878, 12},
		},
		{
			ID:            129,
			Title:         "Spirited Away",
			OriginalTitle: "千と千尋の神隠し",
			PosterPath:    posterPath("/39wmItIWsg5sZMyRUHLkWBcuVCM.jpg"),
			Overview:      "A young girl wanders into a world ruled by gods, witches and spirits.",
			ReleaseDate:   "2001-07-20",
			Popularity:    70.3,
			VoteAverage:   8.5,
			VoteCount:     16300,
			GenreIDs:      []int64{16, 10751, 14},
		},
		{
			ID:            550,
			Title:         "Fight Club",
			OriginalTitle: "Fight Club",
			PosterPath:    posterPath("/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"),
			Overview:      "An insomniac office worker and a soap maker form an underground fight club.",
			ReleaseDate:   "1999-10-15",
			Popularity:    61.7,
			VoteAverage:   8.4,
			VoteCount:     29900,
			GenreIDs:      []int64{18},
		},
		{
			ID:          1001,
			Title:       "Untitled Short",
			PosterPath:  nil,
			Overview:    "A catalogue entry without artwork.",
			ReleaseDate: "",
		},
	}
}

// placeholderPoster is a 1x1 GIF served for every poster path.
var placeholderPoster = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}
