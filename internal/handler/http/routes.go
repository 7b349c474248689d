package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. API routes live under /3 like on the remote
// service; the web authentication page and the image host share the same
// server so a single address serves the whole client configuration.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// set before any sub-router is mounted so that they inherit it
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Get("/authenticate/{token}", h.approveToken)
	router.Get("/t/p/w500/*", h.poster)

	router.Route("/3", func(r chi.Router) {
		r.Use(h.withAPIKey)

		// routes without a session
		r.Group(func(r chi.Router) {
			r.Get("/authentication/token/new", h.newToken)
			r.Post("/authentication/token/validate_with_login", h.validateWithLogin)
			r.Post("/authentication/session/new", h.newSession)
			r.Delete("/authentication/session", h.deleteSession)
			r.Get("/search/movie", h.searchMovies)
		})

		// routes with a session
		r.Group(func(r chi.Router) {
			r.Use(h.withSession)
			r.Get("/account", h.account)

			r.Route("/account/{account_id}", func(r chi.Router) {
				r.Use(withAccountID)
				r.Get("/watchlist/movies", h.watchlist)
				r.Get("/favorite/movies", h.favorites)
				r.Post("/watchlist", h.markWatchlist)
				r.Post("/favorite", h.markFavorite)
			})
		})
	})

	return router
}
