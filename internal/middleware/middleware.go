package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key holding the request id.
const requestIDKey = "requestID"

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, if any.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger attaches a request-scoped logger to the request context and logs
// every request once it completes.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		lgr := base.With().Str("requestID", GetRequestID(c)).Logger()
		c.Request = c.Request.WithContext(lgr.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = lgr.Error()
		case status >= 400:
			event = lgr.Warn()
		default:
			event = lgr.Info()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Int("bodySize", c.Writer.Size()).
			Msg("Request handled")
	}
}
