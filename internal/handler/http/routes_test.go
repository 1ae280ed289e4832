package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_Version(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")
	env.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc123"))

	rec := env.do(t, http.MethodGet, "/api/version", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.VersionResponse{Version: "1.2.3", Date: "2026-01-02", Commit: "abc123"}, decodeBody[models.VersionResponse](t, rec))
}

func TestInit_UnknownRoutesAre404(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/api/nope"},
		{"outside api", http.MethodGet, "/version"},
		{"wrong method on auth route", http.MethodGet, "/api/auth/login"},
		{"wrong method on version", http.MethodPost, "/api/version"},
		{"unsupported method on entries", http.MethodPatch, "/api/entries/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, "", false)
			assertError(t, rec, http.StatusNotFound, app.MsgNotFound)
		})
	}
}

func TestInit_TraceIDEchoed(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	req.Header.Set(traceIDHeader, "abc")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, "abc", rec.Header().Get(traceIDHeader))
}

func TestInit_CORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantOrigin string
	}{
		{name: "open by default", origin: "http://localhost:5173", wantOrigin: "*"},
		{name: "listed origin", allowed: []string{"https://diary.example"}, origin: "https://diary.example", wantOrigin: "https://diary.example"},
		{name: "unlisted origin", allowed: []string{"https://diary.example"}, origin: "https://evil.example", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, config.Server{AllowedOrigins: tt.allowed}, logger.Nop())

			req := httptest.NewRequest(http.MethodOptions, "/api/entries", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestInit_RecoversFromPanics(t *testing.T) {
	// AppInfoService is nil, so the version handler panics
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
