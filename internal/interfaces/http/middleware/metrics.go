package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appprom "github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/prometheus"
)

// Metrics records request counts and latencies. The route template is
// used as the path label so parameterized routes do not explode the
// label cardinality.
func Metrics(m *appprom.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
