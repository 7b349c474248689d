package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/movie-manager/internal/app"
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/utils"
	"github.com/MKhiriev/movie-manager/models"
)

// expiresAtLayout is the timestamp format of expires_at.
const expiresAtLayout = "2006-01-02 15:04:05 UTC"

func (h *Handler) newToken(w http.ResponseWriter, r *http.Request) {
	token, expiresAt := h.storage.NewToken()

	writeJSON(w, r, models.TokenResponse{
		Success:      true,
		ExpiresAt:    expiresAt.Format(expiresAtLayout),
		RequestToken: token,
	}, http.StatusOK)
}

func (h *Handler) validateWithLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		log.Err(err).Msg("invalid login body")
		writeStatus(w, r, errInvalidParameters)
		return
	}

	expiresAt, err := h.storage.ValidateToken(req.RequestToken, req.Username, req.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("login rejected")
		writeStatus(w, r, mapStorageError(err))
		return
	}

	writeJSON(w, r, models.TokenResponse{
		Success:      true,
		ExpiresAt:    expiresAt.Format(expiresAtLayout),
		RequestToken: req.RequestToken,
	}, http.StatusOK)
}

func (h *Handler) newSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeStatus(w, r, errInvalidParameters)
		return
	}

	sessionID, err := h.storage.CreateSession(req.RequestToken)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("session denied")
		writeStatus(w, r, mapStorageError(err))
		return
	}

	writeJSON(w, r, models.SessionResponse{Success: true, SessionID: sessionID}, http.StatusOK)
}

// deleteSession answers an unknown session with success false and status
// 6, which is what the client reports as a rejected logout.
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	var req models.LogoutRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeStatus(w, r, errInvalidParameters)
		return
	}

	if err := h.storage.DeleteSession(req.SessionID); err != nil {
		writeStatus(w, r, statusError{http.StatusNotFound, models.StatusInvalidID, app.MsgInvalidID})
		return
	}

	success := true
	writeJSON(w, r, models.LogoutResponse{Success: &success}, http.StatusOK)
}

func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())

	account, err := h.storage.AccountBySession(sessionID)
	if err != nil {
		writeStatus(w, r, mapStorageError(err))
		return
	}

	writeJSON(w, r, models.Account{
		ID:       account.ID,
		Name:     account.Name,
		Username: account.Username,
	}, http.StatusOK)
}

// approveToken plays the web authentication page: opening it approves the
// token for the session exchange.
func (h *Handler) approveToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.storage.ApproveToken(token); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("token approval failed")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprintln(w, app.MsgTokenNotApprovedPage)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "Request token approved at %s. You can return to the application.\n",
		time.Now().UTC().Format(time.RFC1123))
	if redirect := r.URL.Query().Get("redirect_to"); redirect != "" {
		_, _ = fmt.Fprintf(w, "Continue: %s\n", redirect)
	}
}
