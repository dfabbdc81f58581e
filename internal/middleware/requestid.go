package middleware

import (
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID tags each request with an id, reusing one supplied by the
// client, and echoes it on the response.
func RequestID() drift.HandlerFunc {
	return func(c *drift.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Response.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

func GetRequestID(c *drift.Context) string {
	if id, ok := c.Get(RequestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
