package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDCtxKey is the context key the request id is stored under.
const RequestIDCtxKey = "request_id"

// RequestID propagates an incoming X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDCtxKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
