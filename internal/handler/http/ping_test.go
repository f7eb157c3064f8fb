package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/service"
)

func TestPing(t *testing.T) {
	router := newTestRouter(t).Init()

	rec := serve(t, router, http.MethodGet, "/api/ping")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPing_DoesNotNeedStorage(t *testing.T) {
	// every service is nil: ping must not touch any of them
	router := NewHandler(&service.Services{}, testServerConfig, logger.Nop()).Init()

	for range 3 {
		rec := serve(t, router, http.MethodGet, "/api/ping")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	}
}
