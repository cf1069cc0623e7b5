package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/decikit/decikit/internal/shared/id"
)

// RequestIDKey is the gin context key for the request identifier.
const RequestIDKey = "request_id"

// RequestIDHeader is the response header carrying the identifier.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a ULID request identifier to every request,
// honoring one supplied by the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = string(id.NewRequestID())
		}
		c.Set(RequestIDKey, rid)
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}
