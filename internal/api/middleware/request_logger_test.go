package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEngine(level logrus.Level) (*gin.Engine, *logtest.Hook) {
	gin.SetMode(gin.TestMode)
	log, hook := logtest.NewNullLogger()
	log.SetLevel(level)

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.POST("/api/internship/apply", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error saving application"})
	})
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })
	return r, hook
}

func TestRequestLogger_RequestID(t *testing.T) {
	cases := map[string]bool{
		"req-1":                      true,
		"abc.DEF_123":                true,
		"":                           false,
		"has space":                  false,
		"x\r\nInjected: 1":           false,
		strings.Repeat("a", 65):      false,
		strings.Repeat("a", 64):      true,
		"0b5f6ad2-6c44-4a7e-9f41-1c": true,
	}
	for in, keep := range cases {
		r, hook := newLoggedEngine(logrus.DebugLevel)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if in != "" {
			req.Header.Set(RequestIDHeader, in)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		got := w.Header().Get(RequestIDHeader)
		if keep {
			assert.Equal(t, in, got)
		} else {
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "generated id for %q", in)
		}
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, got, hook.LastEntry().Data[RequestIDKey])
	}
}

func TestRequestLogger_Levels(t *testing.T) {
	r, hook := newLoggedEngine(logrus.DebugLevel)

	body := strings.NewReader(`{"fullName":"A B"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/internship/apply", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	e := hook.LastEntry()
	require.NotNil(t, e)
	assert.Equal(t, logrus.WarnLevel, e.Level)
	assert.Equal(t, "/api/internship/apply", e.Data["route"])
	assert.Equal(t, "application/json", e.Data["content_type"])
	assert.EqualValues(t, 18, e.Data["bytes_in"])

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestRequestLogger_QuietPathsHiddenAtInfo(t *testing.T) {
	r, hook := newLoggedEngine(logrus.InfoLevel)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Empty(t, hook.AllEntries())
}

func TestRequestLogger_UnmatchedRoute(t *testing.T) {
	r, hook := newLoggedEngine(logrus.DebugLevel)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	e := hook.LastEntry()
	require.NotNil(t, e)
	assert.Equal(t, "/nope", e.Data["route"])
	assert.Equal(t, http.StatusNotFound, e.Data["status"])
}
