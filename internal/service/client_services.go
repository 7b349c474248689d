package service

import (
	"github.com/MKhiriev/movie-manager/internal/adapter"
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/store"
)

type ClientServices struct {
	AuthService  ClientAuthService
	MovieService ClientMovieService
}

func NewClientServices(storages *store.ClientStorages, api adapter.MovieAPI, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:  NewClientAuthService(storages, api, logger),
		MovieService: NewClientMovieService(storages, api, logger),
	}
}
