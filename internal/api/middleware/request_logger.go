package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "request_id"

	maxRequestIDLen = 64
)

// quiet paths are polled by probes and scrapers and only logged at debug level
var quietPaths = map[string]struct{}{
	"/ping":    {},
	"/metrics": {},
}

// RequestLogger tags each request with an id (client supplied when it is
// well formed) and writes one structured line once the handler returns.
func RequestLogger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(RequestIDHeader)
		if !validRequestID(reqID) {
			reqID = uuid.NewString()
		}
		c.Header(RequestIDHeader, reqID)
		c.Set(RequestIDKey, reqID)

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		entry := l.WithFields(logrus.Fields{
			RequestIDKey:   reqID,
			"method":       c.Request.Method,
			"route":        route,
			"status":       status,
			"latency_ms":   time.Since(start).Milliseconds(),
			"ip":           c.ClientIP(),
			"content_type": c.ContentType(),
			"bytes_in":     c.Request.ContentLength,
			"bytes_out":    c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch _, quiet := quietPaths[route]; {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		case quiet:
			entry.Debug("request")
		default:
			entry.Info("request")
		}
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		b := id[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '-', b == '_', b == '.':
		default:
			return false
		}
	}
	return true
}
