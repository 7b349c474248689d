package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/utils"
	"github.com/MKhiriev/movie-manager/models"
)

func (h *Handler) watchlist(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utils.GetAccountIDFromContext(r.Context())
	h.writeMovies(w, r)(h.storage.Watchlist(accountID))
}

func (h *Handler) favorites(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utils.GetAccountIDFromContext(r.Context())
	h.writeMovies(w, r)(h.storage.Favorites(accountID))
}

func (h *Handler) searchMovies(w http.ResponseWriter, r *http.Request) {
	h.writeMovies(w, r)(h.storage.Search(r.URL.Query().Get("query")), nil)
}

// writeMovies returns a function that answers with a single page holding
// movies, or with the mapped error.
func (h *Handler) writeMovies(w http.ResponseWriter, r *http.Request) func([]models.Movie, error) {
	return func(movies []models.Movie, err error) {
		if err != nil {
			writeStatus(w, r, mapStorageError(err))
			return
		}

		writeJSON(w, r, models.MovieResults{
			Page:         1,
			Results:      movies,
			TotalPages:   1,
			TotalResults: len(movies),
		}, http.StatusOK)
	}
}

func (h *Handler) markWatchlist(w http.ResponseWriter, r *http.Request) {
	var req models.MarkWatchlistRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil || req.MediaType != models.MediaTypeMovie {
		writeStatus(w, r, errInvalidParameters)
		return
	}

	accountID, _ := utils.GetAccountIDFromContext(r.Context())
	code, err := h.storage.SetWatchlist(accountID, req.MediaID, req.Watchlist)
	h.writeToggle(w, r, req.MediaID, code, err)
}

func (h *Handler) markFavorite(w http.ResponseWriter, r *http.Request) {
	var req models.MarkFavoriteRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil || req.MediaType != models.MediaTypeMovie {
		writeStatus(w, r, errInvalidParameters)
		return
	}

	accountID, _ := utils.GetAccountIDFromContext(r.Context())
	code, err := h.storage.SetFavorite(accountID, req.MediaID, req.Favorite)
	h.writeToggle(w, r, req.MediaID, code, err)
}

// writeToggle answers additions with 201 and removals with 200.
func (h *Handler) writeToggle(w http.ResponseWriter, r *http.Request, movieID int64, code int, err error) {
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Int64("movie_id", movieID).Msg("toggle rejected")
		writeStatus(w, r, mapStorageError(err))
		return
	}

	httpStatus := http.StatusCreated
	if code == models.StatusItemDeleted {
		httpStatus = http.StatusOK
	}
	writeStatus(w, r, statusError{httpStatus, code, toggleMessage(code)})
}

// poster serves the image for the path after /t/p/w500/. The client joins
// the image base and the poster path with an extra slash, so leading
// slashes are not significant.
func (h *Handler) poster(w http.ResponseWriter, r *http.Request) {
	img, err := h.storage.Poster(chi.URLParam(r, "*"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(img))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}
