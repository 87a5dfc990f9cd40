package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/logging"
)

// RequestLogging logs one structured line per request after it completes.
func RequestLogging(logger logging.Logger) gin.HandlerFunc {
	log := logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("latency", time.Since(start)),
			logging.String("client_ip", c.ClientIP()),
			logging.String("request_id", GetRequestID(c)),
		}
		if query != "" {
			fields = append(fields, logging.String("query", query))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logging.String("errors", c.Errors.String()))
			log.Error("request completed with errors", fields...)
			return
		}
		log.Info("request completed", fields...)
	}
}
