package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	REQUEST_ID_HEADER = "X-Request-ID"
	REQUEST_ID_KEY    = "requestID"
)

// RequestID keeps the caller's request id or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(REQUEST_ID_HEADER)

		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(REQUEST_ID_KEY, id)
		c.Writer.Header().Set(REQUEST_ID_HEADER, id)

		c.Next()
	}
}
