package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"member-history-backend/internal/logger"
)

// Logger logs one structured line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		entry := logger.FromGinContext(c).WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Errorf("%s %s", c.Request.Method, path)
		case status >= 400:
			entry.Warnf("%s %s", c.Request.Method, path)
		default:
			entry.Infof("%s %s", c.Request.Method, path)
		}
	}
}
