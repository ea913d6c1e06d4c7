package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer(), "disabled provider should still return a usable no-op tracer")
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: "carrier-pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported exporter")
}

func TestNewProvider_FileExporterRequiresPath(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: "file"})
	require.Error(t, err)
}

func TestProvider_FileExporterWritesSpans(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces", "traces.jsonl")

	p, err := NewProvider(Config{
		Enabled:     true,
		Exporter:    "file",
		FilePath:    tracePath,
		ServiceName: "encore-test",
	})
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "reserve-seat")
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))

	data, err := os.ReadFile(tracePath) //nolint:gosec // test-owned temp path
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"reserve-seat"`)
}

func TestHTTPMiddleware_NilTracerPassthrough(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	h := HTTPMiddleware(nil, next)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.True(t, called)
}

func TestHTTPMiddleware_RecordsRequestSpan(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	p, err := NewProvider(Config{
		Enabled:  true,
		Exporter: "file",
		FilePath: tracePath,
	})
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	h := HTTPMiddleware(p.Tracer(), next)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/seats/1/reserve", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, p.Shutdown(context.Background()))

	data, err := os.ReadFile(tracePath) //nolint:gosec // test-owned temp path
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "POST /seats/1/reserve"))
	assert.Contains(t, string(data), `"http.status_code":201`)
}
