package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID echoes the caller's X-Request-ID or mints one.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog writes one line per request through the service logger.
// Server errors are logged at ERROR, client errors at WARN.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		template := "%s %s %d %s request_id=%s"
		args := []any{c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.GetString(RequestIDHeader)}

		switch {
		case status >= 500:
			m.l.Errorf(ctx, template, args...)
		case status >= 400:
			m.l.Warnf(ctx, template, args...)
		default:
			m.l.Debugf(ctx, template, args...)
		}
	}
}
