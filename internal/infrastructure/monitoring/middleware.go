package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pipecat-ai/tracebacker/perf"
)

// Middleware creates a Gin middleware that times every request into both
// the performance tracker and Prometheus. The counter name is the route
// template ("GET /stats"), not the raw URL, to keep cardinality bounded.
func Middleware(metrics *Metrics, tracker *perf.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		// Process request
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		duration := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())

		metrics.RecordHTTPRequest(method, path, status, duration)
		tracker.Record(method+" "+path, duration)
	}
}
