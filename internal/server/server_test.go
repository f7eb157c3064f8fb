package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-countries/internal/config"
	"github.com/MKhiriev/go-countries/internal/handler"
	httphandler "github.com/MKhiriev/go-countries/internal/handler/http"
	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/service"
)

func testConfig() config.Server {
	return config.Server{
		HTTPAddress:        "127.0.0.1:0",
		RequestTimeout:     time.Second,
		ShutdownTimeout:    time.Second,
		CORSAllowedOrigins: []string{"*"},
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, testConfig(), logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	cfg := testConfig()
	handlers := &handler.Handlers{
		HTTP: httphandler.NewHandler(&service.Services{}, cfg, logger.Nop()),
	}
	cfg.HTTPAddress = ""

	srv, err := NewServer(handlers, cfg, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	cfg := testConfig()
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cfg := testConfig()
	cfg.HTTPAddress = occupied.Addr().String()
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())
	assert.Error(t, err)
}

func TestServer_Run_NoHTTPServer(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := newHTTPServer(mux, testConfig(), logger.Nop())

	done := make(chan error, 1)
	go func() {
		done <- h.serve(ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	h.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after Shutdown")
	}
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := testConfig()
	cfg.RequestTimeout = 3 * time.Second
	cfg.ShutdownTimeout = 7 * time.Second

	h := newHTTPServer(http.NewServeMux(), cfg, logger.Nop())

	assert.Equal(t, cfg.HTTPAddress, h.server.Addr)
	assert.Equal(t, 3*time.Second, h.server.ReadHeaderTimeout)
	assert.Equal(t, 4*time.Second, h.server.WriteTimeout)
	assert.Equal(t, 7*time.Second, h.shutdownTimeout)
}
