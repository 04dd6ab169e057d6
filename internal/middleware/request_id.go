package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voxnav/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID so log lines from one turn can
// be correlated. An incoming X-Request-ID is honored, otherwise a new
// one is generated.
func (m *Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey, reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, reqID)

		c.Next()
	}
}
