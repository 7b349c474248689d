package http

import (
	"net/http"

	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/store"
	"github.com/MKhiriev/movie-manager/internal/utils"
	"github.com/MKhiriev/movie-manager/models"
)

type Handler struct {
	storage *store.StubStorage
	apiKey  string

	logger *logger.Logger
}

func NewHandler(storage *store.StubStorage, apiKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		storage: storage,
		apiKey:  apiKey,
		logger:  logger,
	}
}

// writeStatus answers with the status envelope.
func writeStatus(w http.ResponseWriter, r *http.Request, e statusError) {
	success := e.httpStatus < http.StatusBadRequest
	body := models.StatusResponse{
		StatusCode:    e.code,
		StatusMessage: e.message,
		Success:       &success,
	}

	if _, err := utils.WriteJSON(w, body, e.httpStatus); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing status response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, body any, statusCode int) {
	if _, err := utils.WriteJSON(w, body, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
