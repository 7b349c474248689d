package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/movie-manager/internal/config"
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/store"
)

func newTestStorage() *store.StubStorage {
	return store.NewStubStorage(store.StubAccount{ID: 1, Username: "tester", Password: "secret"}, logger.Nop())
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.ServerConfig{
		App:    config.ServerApp{APIKey: "key"},
		Server: config.StubServer{HTTPAddress: ":8088"},
	}

	h, err := NewHandlers(newTestStorage(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestStorage(), config.ServerConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
