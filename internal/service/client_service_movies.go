package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/movie-manager/internal/adapter"
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/store"
	"github.com/MKhiriev/movie-manager/models"
	"golang.org/x/sync/errgroup"
)

type clientMovieService struct {
	storages *store.ClientStorages
	api      adapter.MovieAPI
	logger   *logger.Logger
}

func NewClientMovieService(storages *store.ClientStorages, api adapter.MovieAPI, logger *logger.Logger) ClientMovieService {
	return &clientMovieService{storages: storages, api: api, logger: logger}
}

func (s *clientMovieService) Refresh(ctx context.Context) error {
	if !s.storages.Session.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.Watchlist(gctx)
		return err
	})
	g.Go(func() error {
		_, err := s.Favorites(gctx)
		return err
	})

	return g.Wait()
}

func (s *clientMovieService) Watchlist(ctx context.Context) ([]models.Movie, error) {
	return s.fetch(ctx, s.storages.Watchlist, s.api.Watchlist)
}

func (s *clientMovieService) Favorites(ctx context.Context) ([]models.Movie, error) {
	return s.fetch(ctx, s.storages.Favorites, s.api.Favorites)
}

func (s *clientMovieService) fetch(ctx context.Context, list *store.MovieList, get func(context.Context) ([]models.Movie, error)) ([]models.Movie, error) {
	if !s.storages.Session.IsAuthenticated() {
		return []models.Movie{}, ErrNotAuthenticated
	}

	movies, err := get(ctx)
	if err != nil {
		return movies, err
	}

	list.Replace(movies)
	return movies, nil
}

func (s *clientMovieService) CachedWatchlist() []models.Movie {
	return s.storages.Watchlist.All()
}

func (s *clientMovieService) CachedFavorites() []models.Movie {
	return s.storages.Favorites.All()
}

func (s *clientMovieService) ToggleWatchlist(ctx context.Context, movie models.Movie) (bool, error) {
	return s.toggle(ctx, "watchlist", s.storages.Watchlist, movie, s.api.ModifyWatchlist)
}

func (s *clientMovieService) ToggleFavorite(ctx context.Context, movie models.Movie) (bool, error) {
	return s.toggle(ctx, "favorites", s.storages.Favorites, movie, s.api.ModifyFavorites)
}

func (s *clientMovieService) toggle(
	ctx context.Context,
	name string,
	list *store.MovieList,
	movie models.Movie,
	modify func(ctx context.Context, movieID int64, add bool) bool,
) (bool, error) {
	if !s.storages.Session.IsAuthenticated() {
		return false, ErrNotAuthenticated
	}

	add := !list.Contains(movie)
	if !modify(ctx, movie.ID, add) {
		return false, fmt.Errorf("%w: %s, movie %d", ErrToggleRejected, name, movie.ID)
	}

	s.applyOptimistic(list, movie, add)
	s.logger.Debug().Str("list", name).Int64("movie_id", movie.ID).Bool("added", add).Msg("list changed")
	return add, nil
}

// applyOptimistic mirrors a confirmed change in the local list without
// fetching it again.
func (s *clientMovieService) applyOptimistic(list *store.MovieList, movie models.Movie, add bool) {
	if add {
		list.Add(movie)
		return
	}
	list.Remove(movie)
}

func (s *clientMovieService) Search(ctx context.Context, query string) ([]models.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Movie{}, ErrEmptyQuery
	}

	movies, err := s.api.Search(ctx, query)
	if err != nil {
		return movies, err
	}

	s.storages.SearchResults.Replace(movies)
	return movies, nil
}

func (s *clientMovieService) Poster(ctx context.Context, movie models.Movie) ([]byte, error) {
	if !movie.HasPoster() {
		return nil, fmt.Errorf("%w: movie %d", ErrNoPoster, movie.ID)
	}
	return s.api.PosterImage(ctx, *movie.PosterPath)
}

func (s *clientMovieService) FindMovie(id int64) (models.Movie, bool) {
	return s.storages.FindMovie(id)
}
