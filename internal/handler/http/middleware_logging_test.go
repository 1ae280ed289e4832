package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accessLine runs a request through withTraceID and withLogging and returns
// the access log entry.
func accessLine(t *testing.T, method, path string, next http.HandlerFunc) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	h := &Handler{logger: logger.NewLoggerWithWriter("test", &buf)}

	req := httptest.NewRequest(method, path, strings.NewReader(`{"password":"secret1"}`))
	h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "secret1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		body       string
		wantStatus float64
		wantSize   float64
	}{
		{name: "GET 200", method: http.MethodGet, path: "/api/entries", status: http.StatusOK, body: "[]", wantStatus: 200, wantSize: 2},
		{name: "POST 201", method: http.MethodPost, path: "/api/entries", status: http.StatusCreated, body: `{"id":1}`, wantStatus: 201, wantSize: 8},
		{name: "DELETE 404", method: http.MethodDelete, path: "/api/entries/9", status: http.StatusNotFound, body: `{"error":"Entry not found"}`, wantStatus: 404, wantSize: 27},
		{name: "nothing written", method: http.MethodGet, path: "/api/version", wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := accessLine(t, tt.method, tt.path, func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
			assert.Contains(t, entry, "trace_id")
		})
	}
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
