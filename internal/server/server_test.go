package server

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/transicaocapilar/website/internal/config"
	"github.com/transicaocapilar/website/internal/content"
	"github.com/transicaocapilar/website/internal/handlers"
)

func newRouter(t *testing.T, log *slog.Logger) http.Handler {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)

	return NewRouter(RouterParams{
		Pages: handlers.NewPages(c, log),
		Assets: Assets{FS: fstest.MapFS{
			"styles.css": {Data: []byte(".marquee-track{will-change:transform}")},
		}},
		Metrics: NewMetrics(),
		Log:     log,
	})
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter_Routes(t *testing.T) {
	h := newRouter(t, discard())

	tests := []struct {
		path        string
		status      int
		contentType string
		body        string
	}{
		{"/", http.StatusOK, "text/html; charset=utf-8", "data-marquee-slot"},
		{"/entregavel", http.StatusOK, "text/html; charset=utf-8", "data-module"},
		{"/health", http.StatusOK, "application/json", `{"status":"ok"}`},
		{"/static/styles.css", http.StatusOK, "text/css; charset=utf-8", "will-change"},
		{"/static/missing.css", http.StatusNotFound, "", ""},
		{"/nao-existe", http.StatusNotFound, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(h, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			}
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	h := newRouter(t, discard())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	h := newRouter(t, discard())

	get(h, "/")
	get(h, "/")
	get(h, "/nao-existe")

	rec := get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `website_http_requests_total{route="/",status="200"} 2`)
	assert.Contains(t, body, `website_http_requests_total{route="unmatched",status="404"} 1`)
	assert.Contains(t, body, "website_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestRouter_RequestLog(t *testing.T) {
	var buf bytes.Buffer
	h := newRouter(t, slog.New(slog.NewJSONHandler(&buf, nil)))

	get(h, "/health")
	assert.Empty(t, buf.String())

	get(h, "/entregavel")
	out := buf.String()
	assert.Contains(t, out, `"msg":"request"`)
	assert.Contains(t, out, `"uri":"/entregavel"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"scope":"http"`)
	assert.Contains(t, out, `"request_id":`)
}

func testConfig(port string) *config.Config {
	return &config.Config{
		Port:            port,
		Address:         "127.0.0.1",
		Environment:     "test",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	}
}

func TestStartServer_Lifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	StartServer(lc, http.NotFoundHandler(), testConfig("0"), discard())

	require.NoError(t, lc.Start(context.Background()))
	assert.NoError(t, lc.Stop(context.Background()))
}

func TestStartServer_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	StartServer(lc, http.NotFoundHandler(), testConfig(port), discard())

	assert.Error(t, lc.Start(context.Background()))
}
