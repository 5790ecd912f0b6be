package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
	"golang.org/x/time/rate"
	"math"
	"net/http"
)

// RateLimit shares one token bucket between all callers. A limit of zero
// disables it.
func RateLimit(limit float64) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := rate.NewLimiter(rate.Limit(limit), int(math.Max(1, math.Ceil(limit))))

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.Response(http.StatusTooManyRequests, "rate limit exceeded", nil, nil))
			return
		}

		c.Next()
	}
}
