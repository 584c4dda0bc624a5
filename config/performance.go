package config

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// The analytics endpoints recompute from raw visit rows on every call,
// so they get a looser budget than the CRUD paths.
const (
	slowRequestThreshold = 200 * time.Millisecond
	slowReportThreshold  = 500 * time.Millisecond
)

func slowThresholdFor(path string) time.Duration {
	if strings.HasPrefix(path, "/api/reports") || strings.HasPrefix(path, "/api/dashboard") {
		return slowReportThreshold
	}
	return slowRequestThreshold
}

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Process request
		c.Next()

		// CORS preflights are noise
		if c.Request.Method == http.MethodOptions {
			return
		}

		latency := time.Since(start)
		path := c.Request.URL.Path

		log.Printf("[PERF] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			path,
			c.Writer.Status(),
			latency)

		if latency > slowThresholdFor(path) {
			log.Printf("SLOW REQUEST: %s %s took %v",
				c.Request.Method, path, latency)
		}
	}
}
