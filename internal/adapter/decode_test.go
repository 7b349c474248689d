package adapter

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/movie-manager/internal/transport"
	"github.com/MKhiriev/movie-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resp(status int, body string) transport.Response {
	return transport.Response{StatusCode: status, Body: []byte(body)}
}

func TestDecodeEnvelope_Expected(t *testing.T) {
	var token models.TokenResponse
	err := decodeEnvelope(resp(http.StatusOK, `{"success":true,"expires_at":"x","request_token":"T"}`), &token)

	require.NoError(t, err)
	assert.Equal(t, "T", token.RequestToken)
}

// A 201 with the expected shape is still a success.
func TestDecodeEnvelope_IgnoresHTTPStatus(t *testing.T) {
	var status models.StatusResponse
	err := decodeEnvelope(resp(http.StatusCreated, `{"status_code":1,"status_message":"Success."}`), &status)

	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, status.StatusCode)
}

func TestDecodeEnvelope_FallsBackToErrorEnvelope(t *testing.T) {
	var token models.TokenResponse
	err := decodeEnvelope(resp(http.StatusUnauthorized,
		`{"success":false,"status_code":30,"status_message":"Invalid username and/or password."}`), &token)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, models.StatusInvalidCredentials, apiErr.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatus)
	assert.Contains(t, apiErr.Error(), "Invalid username")
}

func TestDecodeEnvelope_Unrecognised(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"empty", ``},
		{"wrong shape", `{"foo":"bar"}`},
		{"results missing", `{"page":1,"total_pages":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results models.MovieResults
			err := decodeEnvelope(resp(http.StatusOK, tt.body), &results)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestDecodeEnvelope_EmptyResultsIsValid(t *testing.T) {
	var results models.MovieResults
	err := decodeEnvelope(resp(http.StatusOK, `{"page":1,"results":[],"total_pages":0,"total_results":0}`), &results)

	require.NoError(t, err)
	assert.NotNil(t, results.Results)
	assert.Empty(t, results.Results)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"ok", http.StatusOK, nil},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"server error", http.StatusBadGateway, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(resp(tt.status, ""))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
