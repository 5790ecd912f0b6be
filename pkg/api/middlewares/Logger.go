package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/inventory/pkg/logger"
	"github.com/simplecontainer/inventory/pkg/metrics"
	"go.uber.org/zap"
	"strconv"
	"time"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(REQUEST_ID_KEY)),
		)
	}
}

// Metrics counts requests per matched route so resource names do not
// become label values.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()

		if route == "" {
			route = "unmatched"
		}

		metrics.HttpRequests.Increment(route, strconv.Itoa(c.Writer.Status()))
	}
}
