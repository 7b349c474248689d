package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/utils"
)

// withAPIKey rejects requests whose api_key query parameter is not the
// configured key.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != h.apiKey {
			logger.FromRequest(r).Warn().Msg("invalid api key")
			writeStatus(w, r, errInvalidAPIKey)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withSession resolves the session_id query parameter and stores the
// session and account ids in the request context.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session_id")
		if sessionID == "" {
			writeStatus(w, r, errAuthFailed)
			return
		}

		account, err := h.storage.AccountBySession(sessionID)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("session rejected")
			writeStatus(w, r, mapStorageError(err))
			return
		}

		ctx := utils.WithAccount(r.Context(), sessionID, account.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withAccountID checks that the {account_id} path segment names the
// account the session belongs to.
func withAccountID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pathID, err := strconv.ParseInt(chi.URLParam(r, "account_id"), 10, 64)
		if err != nil {
			writeStatus(w, r, errNotFound)
			return
		}

		accountID, ok := utils.GetAccountIDFromContext(r.Context())
		if !ok || accountID != pathID {
			writeStatus(w, r, errAuthFailed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, errNotFound)
}
