package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustainhire/internship-intake/internal/api/handlers"
)

const origin = "https://sustainhireenterprise.netlify.app"

func newEngine(t *testing.T) (*gin.Engine, *logtest.Hook) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Application: handlers.NewApplicationHandler(nil, 0),
		Logger:      log,
		CORSOrigin:  origin,
	})
	return r, hook
}

func TestPing(t *testing.T) {
	r, hook := newEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.Equal(t, "req-1", w.Header().Get("X-Request-Id"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "go_goroutines"))
}

func TestCORS_AllowedOriginPreflight(t *testing.T) {
	r, _ := newEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/internship/apply", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_OtherOriginRejected(t *testing.T) {
	r, _ := newEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/internship/apply", strings.NewReader("{}"))
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
