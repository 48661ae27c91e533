package middleware

import (
	"time"

	"github.com/Polsaker/dongerdong/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Logger logs every HTTP request. Health probes log at debug level.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		}
		if roomID := c.Param("roomId"); roomID != "" {
			fields = append(fields, "room", roomID)
		}

		if c.FullPath() == "/health" {
			logger.Debug("HTTP Request", fields...)
			return
		}
		logger.Info("HTTP Request", fields...)
	}
}
