package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/transport"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		headers       map[string]string
		wantTraceID   string
		wantGenerated bool
	}{
		{
			name:        "trace id header is reused",
			headers:     map[string]string{traceIDHeader: "my-trace"},
			wantTraceID: "my-trace",
		},
		{
			name:        "request id is used when no trace id",
			headers:     map[string]string{transport.RequestIDHeader: "req-1"},
			wantTraceID: "req-1",
		},
		{
			name: "trace id wins over request id",
			headers: map[string]string{
				traceIDHeader:             "my-trace",
				transport.RequestIDHeader: "req-1",
			},
			wantTraceID: "my-trace",
		},
		{
			name:          "generated when absent",
			wantGenerated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxLogger *logger.Logger
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxLogger = logger.FromRequest(r)
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/3/account", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			newTestHandler().withTraceID(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusTeapot, rr.Code)
			require.NotNil(t, ctxLogger)

			got := rr.Header().Get(traceIDHeader)
			if tt.wantGenerated {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantTraceID, got)
		})
	}
}
