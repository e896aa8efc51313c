package middleware

import (
	"time"

	"portfolio-site/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ThemeChangeKey holds the theme mode a request switched to, if any.
const ThemeChangeKey = "ThemeChange"

// RequestLogger writes one line per request. 5xx logs at error, 4xx at warn.
func RequestLogger(l *zap.Logger) gin.HandlerFunc {
	l = l.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", response.RequestID(c)),
		}
		if mode := c.GetString(ThemeChangeKey); mode != "" {
			fields = append(fields, zap.String("theme", mode))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			l.Error("request", fields...)
		case status >= 400:
			l.Warn("request", fields...)
		default:
			l.Info("request", fields...)
		}
	}
}
