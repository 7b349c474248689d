package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/movie-manager/internal/adapter"
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/store"
	"github.com/MKhiriev/movie-manager/models"
)

type clientAuthService struct {
	storages *store.ClientStorages
	api      adapter.MovieAPI
	logger   *logger.Logger
}

func NewClientAuthService(storages *store.ClientStorages, api adapter.MovieAPI, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{storages: storages, api: api, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return models.Account{}, ErrEmptyCredentials
	}

	if err := a.api.RequestToken(ctx); err != nil {
		return models.Account{}, err
	}
	if err := a.api.ValidateLogin(ctx, creds); err != nil {
		return models.Account{}, err
	}

	account, err := a.openSession(ctx)
	if err != nil {
		return models.Account{}, err
	}

	a.logger.Info().Int64("account_id", account.ID).Str("username", creds.Username).Msg("logged in")
	return account, nil
}

func (a *clientAuthService) BeginWebLogin(ctx context.Context) (string, error) {
	if err := a.api.RequestToken(ctx); err != nil {
		return "", err
	}
	return a.api.WebAuthURL(), nil
}

func (a *clientAuthService) CompleteWebLogin(ctx context.Context) (models.Account, error) {
	account, err := a.openSession(ctx)
	if err != nil {
		return models.Account{}, err
	}

	a.logger.Info().Int64("account_id", account.ID).Msg("logged in through the web")
	return account, nil
}

// openSession exchanges the validated request token for a session and loads
// the account the session belongs to. Lists of a previous account are
// dropped. A session whose account cannot be loaded is closed again.
func (a *clientAuthService) openSession(ctx context.Context) (models.Account, error) {
	if err := a.api.CreateSession(ctx); err != nil {
		return models.Account{}, err
	}

	account, err := a.api.Account(ctx)
	if err != nil {
		a.abandonSession(ctx)
		return models.Account{}, err
	}

	a.storages.ClearLists()
	return account, nil
}

// abandonSession deletes the remote session if it can and always forgets the
// local one.
func (a *clientAuthService) abandonSession(ctx context.Context) {
	if ok, err := a.api.Logout(ctx); err != nil || !ok {
		a.logger.Warn().Err(err).Bool("deleted", ok).Msg("could not delete abandoned session")
	}
	a.storages.Session.Clear()
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	ok, err := a.api.Logout(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrLogoutRejected
	}

	a.storages.ClearLists()
	a.logger.Info().Msg("logged out")
	return nil
}

func (a *clientAuthService) IsAuthenticated() bool {
	return a.storages.Session.IsAuthenticated()
}
